// Package keysort provides sorting and selection for collections that
// are ordered by a scalar key, with radix sorts, sorting networks, and
// radix selection chosen by input size and key width.
//
// Keysort provides the following subpackages:
//
// keysort/codec maps integer and floating point keys to unsigned
// integers that compare in the same order.
//
// keysort/sort provides the Engine, which sorts and partitions slices
// by key with reusable scratch memory, and direct access to each of
// its algorithms.
//
// keysort/batch sorts and selects many segments of a slice
// concurrently, with one Engine per worker.
//
// keysort/parallel, keysort/speculative, and keysort/sequential
// provide the range drivers that package batch runs on.
package keysort
