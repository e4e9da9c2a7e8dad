package dict

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRemap(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2}
	got, err := Remap(m, func(k string, v int) (string, int) {
		return strings.ToUpper(k), v * 10
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]int{"A": 10, "B": 20}) {
		t.Fatalf("unexpected remap result: %v", got)
	}
}

func TestRemap_DuplicateKeyFails(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2}
	got, err := Remap(m, func(k string, v int) (string, int) {
		return "same", v
	})
	if got != nil {
		t.Fatalf("expected no partial map, got %v", got)
	}

	var dup *DuplicateKeyError[string]
	if !errors.As(err, &dup) || dup.Key != "same" {
		t.Fatalf("expected duplicate-key failure for %q, got: %v", "same", err)
	}
}

func TestDeepMerge(t *testing.T) {
	t.Parallel()

	dst := map[string]interface{}{"a": 1, "b": map[string]interface{}{"c": 2}}
	src := map[string]interface{}{"b": map[string]interface{}{"d": 3}, "e": 4}

	got := DeepMerge(dst, src)

	expected := map[string]interface{}{
		"a": 1,
		"b": map[string]interface{}{"c": 2, "d": 3},
		"e": 4,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	// inputs must stay untouched
	if !reflect.DeepEqual(dst, map[string]interface{}{"a": 1, "b": map[string]interface{}{"c": 2}}) {
		t.Fatalf("dst was mutated: %v", dst)
	}
}

func TestDeepMerge_SlicesReplacedWholesale(t *testing.T) {
	t.Parallel()

	dst := map[string]interface{}{"list": []interface{}{1, 2, 3}}
	src := map[string]interface{}{"list": []interface{}{9}}

	got := DeepMerge(dst, src)
	if !reflect.DeepEqual(got["list"], []interface{}{9}) {
		t.Fatalf("expected wholesale replacement, got %v", got["list"])
	}
}

func TestDeepClone(t *testing.T) {
	t.Parallel()

	original := map[string]interface{}{
		"nested": map[string]interface{}{"k": 1},
		"list":   []interface{}{1, 2},
	}

	clone := DeepClone(original).(map[string]interface{})
	clone["nested"].(map[string]interface{})["k"] = 99
	clone["list"].([]interface{})[0] = 99

	if original["nested"].(map[string]interface{})["k"] != 1 {
		t.Fatalf("nested map shared with clone")
	}
	if original["list"].([]interface{})[0] != 1 {
		t.Fatalf("slice shared with clone")
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := Pick(m, "a", "c", "missing")
	if !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Fatalf("unexpected pick: %v", got)
	}
}

func TestPickPresent_SkipsNils(t *testing.T) {
	t.Parallel()

	m := map[string]interface{}{"a": 1, "b": nil, "c": "x"}
	got := PickPresent(m, "a", "b", "c")
	if !reflect.DeepEqual(got, map[string]interface{}{"a": 1, "c": "x"}) {
		t.Fatalf("unexpected pick: %v", got)
	}
}
