// Package dict provides transforms over maps, including the loosely typed
// map[string]interface{} shape produced by JSON decoding.
//
// Key operations:
// - Remap: rebuild a map entry by entry, failing on duplicate output keys
// - DeepMerge: recursive merge of plain maps, wholesale replacement otherwise
// - DeepClone: recursive copy of plain maps and slices
// - Pick/PickPresent: select a subset of keys, optionally dropping nils
//
// Inputs are never modified; every transform builds a fresh map.
package dict
