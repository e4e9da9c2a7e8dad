package coll

import (
	"math/rand/v2"
)

// Pair couples two values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// GroupBy buckets items by key, preserving the original relative order
// inside every bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Uniq removes duplicates, keeping the first occurrence of each value.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, func(t T) T { return t })
}

// UniqBy removes items whose derived key was already seen, keeping the
// first occurrence.
func UniqBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Chunk splits items into consecutive slices of at most size elements.
// The last chunk may be shorter. A non-positive size yields no chunks.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Zip pairs elements positionally, stopping at the shorter input.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	pairs := make([]Pair[A, B], n)
	for i := range n {
		pairs[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return pairs
}

// Frequency counts occurrences of each value.
func Frequency[T comparable](items []T) map[T]int {
	return CountBy(items, func(t T) T { return t })
}

// CountBy counts items per derived key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// Flatten concatenates one level of nesting.
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// FlattenDeep flattens arbitrarily nested []interface{} values into a
// single level; non-slice elements pass through in order.
func FlattenDeep(nested []interface{}) []interface{} {
	out := make([]interface{}, 0, len(nested))
	for _, v := range nested {
		if inner, ok := v.([]interface{}); ok {
			out = append(out, FlattenDeep(inner)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits items by predicate, preserving relative order on both
// sides.
func Partition[T any](items []T, pred func(T) bool) (matched []T, rest []T) {
	matched = make([]T, 0, len(items))
	rest = make([]T, 0, len(items))

	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// Union merges lists into one duplicate-free slice ordered by first
// appearance.
func Union[T comparable](lists ...[]T) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)

	for _, list := range lists {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Shuffle returns a uniform random permutation of items (Fisher–Yates over
// a copy); the input slice is left untouched.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
