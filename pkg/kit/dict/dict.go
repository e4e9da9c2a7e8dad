package dict

import "fmt"

// DuplicateKeyError reports an entry transform producing the same output
// key twice.
type DuplicateKeyError[K comparable] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key %v produced by entry transform", e.Key)
}

// Remap rebuilds m by passing every entry through f. When two entries map
// to the same output key the transform fails with *DuplicateKeyError and no
// partial map is returned.
func Remap[K1 comparable, V1 any, K2 comparable, V2 any](m map[K1]V1,
	f func(k K1, v V1) (K2, V2)) (map[K2]V2, error) {

	out := make(map[K2]V2, len(m))
	for k, v := range m {
		k2, v2 := f(k, v)
		if _, ok := out[k2]; ok {
			return nil, &DuplicateKeyError[K2]{Key: k2}
		}
		out[k2] = v2
	}
	return out, nil
}

// DeepMerge combines dst and src into a new map. Entries whose values are
// both plain maps merge recursively; any other value kind, slices included,
// is replaced wholesale by the src side. Neither input is modified.
func DeepMerge(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))

	for k, v := range dst {
		out[k] = DeepClone(v)
	}

	for k, v := range src {
		existing, ok := out[k].(map[string]interface{})
		incoming, plain := v.(map[string]interface{})
		if ok && plain {
			out[k] = DeepMerge(existing, incoming)
			continue
		}
		out[k] = DeepClone(v)
	}
	return out
}

// DeepClone copies plain maps and []interface{} slices recursively; every
// other value kind is returned as-is and therefore shared by reference.
func DeepClone(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = DeepClone(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = DeepClone(e)
		}
		return out
	default:
		return v
	}
}

// Pick returns the subset of m holding only the requested keys; keys absent
// from m are skipped.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickPresent is Pick over loosely typed maps that additionally drops
// entries holding nil values.
func PickPresent(m map[string]interface{}, keys ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			out[k] = v
		}
	}
	return out
}
