package sort

import (
	"fmt"

	"github.com/exascience/keysort/codec"
)

// IsSorted reports whether data is sorted in increasing order of key,
// in the order this package sorts keys in: negative zero before
// positive zero, and NaNs at the ends according to their sign.
func IsSorted[V any, K codec.Key](data []V, key func(V) K) bool {
	return isSorted(data, codec.Project(key))
}

// IsNthElement reports whether data is partitioned around index nth:
// no key before nth is greater than the key at nth, and no key after
// nth is smaller. It returns false if nth is not a valid index of
// data.
func IsNthElement[V any, K codec.Key](data []V, nth int, key func(V) K) bool {
	if (nth < 0) || (nth >= len(data)) {
		return false
	}
	return isNthElement(data, nth, codec.Project(key))
}

func isSorted[V any](data []V, ukey func(V) uint64) bool {
	if len(data) < 2 {
		return true
	}
	prev := ukey(data[0])
	for i := 1; i < len(data); i++ {
		k := ukey(data[i])
		if k < prev {
			return false
		}
		prev = k
	}
	return true
}

func isNthElement[V any](data []V, nth int, ukey func(V) uint64) bool {
	pivot := ukey(data[nth])
	for i := 0; i < nth; i++ {
		if ukey(data[i]) > pivot {
			return false
		}
	}
	for i := nth + 1; i < len(data); i++ {
		if ukey(data[i]) < pivot {
			return false
		}
	}
	return true
}

func assertSorted[V any](data []V, ukey func(V) uint64) {
	if debug && !isSorted(data, ukey) {
		panic(fmt.Sprintf("range of length %v not sorted", len(data)))
	}
}

func assertNthElement[V any](data []V, nth int, ukey func(V) uint64) {
	if debug && !isNthElement(data, nth, ukey) {
		panic(fmt.Sprintf("range of length %v not partitioned around element %v", len(data), nth))
	}
}
