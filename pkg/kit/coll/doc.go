// Package coll provides ordered, allocation-conscious transforms over
// slices.
//
// Key operations:
// - GroupBy/CountBy/Frequency: bucket or count items by key
// - Uniq/UniqBy: de-duplicate keeping first occurrences
// - Chunk/Zip/Flatten/FlattenDeep: reshape sequences
// - Partition/Union: split by predicate, merge duplicate-free
// - Shuffle: uniform random permutation of a copy
//
// Every function leaves its inputs unmodified.
package coll
