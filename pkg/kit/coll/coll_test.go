package coll

import (
	"reflect"
	"sort"
	"testing"
)

type person struct {
	age  int
	name string
}

func TestGroupBy_PreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	people := []person{{30, "a"}, {25, "b"}, {30, "c"}}
	groups := GroupBy(people, func(p person) int { return p.age })

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if !reflect.DeepEqual(groups[25], []person{{25, "b"}}) {
		t.Fatalf("unexpected group 25: %v", groups[25])
	}
	if !reflect.DeepEqual(groups[30], []person{{30, "a"}, {30, "c"}}) {
		t.Fatalf("unexpected group 30: %v", groups[30])
	}
}

func TestUniq(t *testing.T) {
	t.Parallel()

	if got := Uniq([]int{1, 2, 1, 3, 2}); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestUniqBy(t *testing.T) {
	t.Parallel()

	people := []person{{30, "a"}, {25, "b"}, {30, "c"}}
	got := UniqBy(people, func(p person) int { return p.age })
	if !reflect.DeepEqual(got, []person{{30, "a"}, {25, "b"}}) {
		t.Fatalf("expected first occurrence per age, got %v", got)
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	got := Chunk([]int{1, 2, 3, 4, 5}, 2)
	expected := [][]int{{1, 2}, {3, 4}, {5}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if got := Chunk([]int{}, 2); len(got) != 0 {
		t.Fatalf("expected no chunks from empty input, got %v", got)
	}
	if got := Chunk([]int{1, 2}, 0); len(got) != 0 {
		t.Fatalf("expected no chunks for a non-positive size, got %v", got)
	}
}

func TestZip_StopsAtShorter(t *testing.T) {
	t.Parallel()

	got := Zip([]int{1, 2, 3}, []string{"a", "b"})
	expected := []Pair[int, string]{{1, "a"}, {2, "b"}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestFrequency(t *testing.T) {
	t.Parallel()

	got := Frequency([]string{"a", "b", "a", "a"})
	if got["a"] != 3 || got["b"] != 1 || len(got) != 2 {
		t.Fatalf("unexpected counts: %v", got)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	got := Flatten([][]int{{1, 2}, {}, {3}})
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestFlattenDeep(t *testing.T) {
	t.Parallel()

	nested := []interface{}{1, []interface{}{2, []interface{}{3, 4}}, 5}
	got := FlattenDeep(nested)
	if !reflect.DeepEqual(got, []interface{}{1, 2, 3, 4, 5}) {
		t.Fatalf("expected flat sequence, got %v", got)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	even, odd := Partition([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(even, []int{2, 4}) || !reflect.DeepEqual(odd, []int{1, 3}) {
		t.Fatalf("unexpected partition: %v / %v", even, odd)
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	got := Union([]int{1, 2}, []int{2, 3}, []int{3, 4})
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("expected [1 2 3 4], got %v", got)
	}
}

func TestShuffle_PermutationLeavesOriginalUntouched(t *testing.T) {
	t.Parallel()

	original := []int{1, 2, 3, 4, 5}
	snapshot := []int{1, 2, 3, 4, 5}

	shuffled := Shuffle(original)

	if !reflect.DeepEqual(original, snapshot) {
		t.Fatalf("original was mutated: %v", original)
	}
	if len(shuffled) != len(original) {
		t.Fatalf("expected %d elements, got %d", len(original), len(shuffled))
	}

	sorted := make([]int, len(shuffled))
	copy(sorted, shuffled)
	sort.Ints(sorted)
	if !reflect.DeepEqual(sorted, snapshot) {
		t.Fatalf("expected same multiset, got %v", shuffled)
	}
}
