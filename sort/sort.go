/*
Package sort provides an adaptive sorting and selection engine for
collections that are ordered by a scalar key.

Instead of comparators, all functions in this package take a key
function that maps an element to an integer or floating point key, as
defined by codec.Key. Keys are converted to order-preserving unsigned
integers, which lets the engine choose between sorting networks,
insertion sort, and least or most significant byte first radix sorts,
depending on the number of elements and the width of the key.

An Engine keeps a scratch buffer between calls, so that repeated sorts
of similar sizes do not allocate. An Engine must not be used by more
than one goroutine at the same time; use one Engine per goroutine
instead, as package batch does.

Precondition violations, such as an nth element outside of the range,
cause a panic, like an out-of-range slice index would.
*/
package sort

import (
	"fmt"
	"math"

	"github.com/exascience/keysort/codec"
)

const (
	// Identity keys below this many elements per key byte are sorted
	// with sorting networks.
	networkFactor = 24

	// Projected keys wider than lsdMaxWidth bytes are sorted most
	// significant byte first from msdMinLen elements on.
	lsdMaxWidth = 4
	msdMinLen   = 1 << 20

	// Below selectMinLen elements, a full sort is cheaper than
	// selection.
	selectMinLen = 48

	// DefaultMaxLen is the largest range an Engine accepts unless
	// WithMaxLen says otherwise: math.MaxUint32 - 1, or math.MaxInt on
	// platforms with 32-bit ints.
	DefaultMaxLen = min(math.MaxUint32-1, math.MaxInt)
)

// An Engine sorts and selects elements, reusing its scratch buffer
// across calls.
//
// The zero Engine is not valid; use New.
type Engine struct {
	scratch scratch
	maxLen  int
}

type options struct {
	alloc    Allocator
	maxLen   int
	capacity int
}

// Option configures an Engine.
type Option func(*options)

// WithAllocator sets the Allocator that provides the scratch memory.
// If nil is passed, HeapAllocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = HeapAllocator{}
		}
		o.alloc = a
	}
}

// WithMaxLen sets the largest number of elements the Engine accepts.
// Passing a larger range to any of its functions panics. The default
// is DefaultMaxLen.
func WithMaxLen(n int) Option {
	return func(o *options) {
		o.maxLen = n
	}
}

// WithInitialCapacity preallocates bytes of scratch memory.
func WithInitialCapacity(bytes int) Option {
	return func(o *options) {
		o.capacity = bytes
	}
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := options{
		alloc:  HeapAllocator{},
		maxLen: DefaultMaxLen,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxLen < 0 {
		panic(fmt.Sprintf("invalid maximum length: %v", o.maxLen))
	}
	e := &Engine{
		scratch: scratch{alloc: o.alloc},
		maxLen:  o.maxLen,
	}
	if o.capacity > 0 {
		e.scratch.grow(o.capacity)
	}
	return e
}

// Capacity returns the number of bytes of scratch memory the Engine
// currently holds. It never decreases, except through Release.
func (e *Engine) Capacity() int {
	return e.scratch.capacity()
}

// Release returns the scratch memory to the Allocator. The Engine
// remains usable and allocates again on demand.
func (e *Engine) Release() {
	e.scratch.release()
}

func (e *Engine) checkLen(n int) {
	if n > e.maxLen {
		panic(fmt.Sprintf("range too large: %v elements, at most %v allowed", n, e.maxLen))
	}
}

func (e *Engine) checkNth(n, nth int) {
	e.checkLen(n)
	if (nth < 0) || (nth >= n) {
		panic(fmt.Sprintf("invalid nth element: %v for range of length %v", nth, n))
	}
}

// Identity returns k. It is the key function for sorting scalar values
// by themselves with the direct entry points.
func Identity[K codec.Key](k K) K {
	return k
}

/*
Sort sorts data in increasing order, using the values themselves as
keys.

Small inputs are sorted with sorting networks, larger ones with a
least significant byte first radix sort. Sort is not guaranteed to be
stable.
*/
func Sort[K codec.Key](e *Engine, data []K) {
	e.checkLen(len(data))
	sortIdentity(e, data, codec.Encoder[K](), codec.Width[K]())
	assertSorted(data, codec.Encoder[K]())
}

func sortIdentity[K codec.Key](e *Engine, data []K, ukey func(K) uint64, width int) {
	if len(data) < networkFactor*width {
		runNetworkSort(e, data, ukey)
	} else {
		runRadixSortLSD(e, data, ukey, width)
	}
}

/*
SortByKey sorts data in increasing order of key.

The algorithm depends on the number of elements and the width of the
key type: insertion sort for small inputs, most significant byte first
radix sort for very large inputs with 8-byte keys, and least
significant byte first radix sort otherwise. SortByKey is not
guaranteed to be stable; use RadixSortLSD for a stable sort.
*/
func SortByKey[V any, K codec.Key](e *Engine, data []V, key func(V) K) {
	e.checkLen(len(data))
	ukey := codec.Project(key)
	sortProjected(e, data, ukey, codec.Width[K]())
	assertSorted(data, ukey)
}

func sortProjected[V any](e *Engine, data []V, ukey func(V) uint64, width int) {
	switch n := len(data); {
	case n < insertionThreshold(width):
		insertionSort(data, ukey)
	case width <= lsdMaxWidth || n < msdMinLen:
		runRadixSortLSD(e, data, ukey, width)
	default:
		runRadixSortMSD(e, data, ukey, width)
	}
}

/*
NthElement rearranges data so that data[nth] holds the value that
would be at index nth if data were sorted, all values before it are
not greater, and all values from it onwards are not smaller.

NthElement panics if nth is not a valid index of data.
*/
func NthElement[K codec.Key](e *Engine, data []K, nth int) {
	e.checkNth(len(data), nth)
	ukey, width := codec.Encoder[K](), codec.Width[K]()
	if len(data) < selectMinLen {
		sortIdentity(e, data, ukey, width)
	} else {
		radixSelect(&e.scratch, data, nth, ukey, width)
	}
	assertNthElement(data, nth, ukey)
}

// NthElementByKey is like NthElement, but orders elements by key.
func NthElementByKey[V any, K codec.Key](e *Engine, data []V, nth int, key func(V) K) {
	e.checkNth(len(data), nth)
	ukey, width := codec.Project(key), codec.Width[K]()
	if len(data) < selectMinLen {
		sortProjected(e, data, ukey, width)
	} else {
		radixSelect(&e.scratch, data, nth, ukey, width)
	}
	assertNthElement(data, nth, ukey)
}

func runNetworkSort[V any](e *Engine, data []V, ukey func(V) uint64) {
	if len(data) <= networkCap {
		sortFixed(data, ukey)
		return
	}
	networkSort(data, values[V](&e.scratch, len(data)), ukey)
}

func runRadixSortLSD[V any](e *Engine, data []V, ukey func(V) uint64, width int) {
	radixSortLSD(data, values[V](&e.scratch, len(data)), ukey, width)
}

func runRadixSortMSD[V any](e *Engine, data []V, ukey func(V) uint64, width int) {
	radixSortMSD(newRelocator[V](), data, values[V](&e.scratch, len(data)), ukey, width, width-1)
}

// NetworkSort sorts data in increasing order of key with sorting
// networks on blocks of up to 32 elements, which are then merged
// pairwise bottom-up. The merge passes are stable, the networks are
// not.
func NetworkSort[V any, K codec.Key](e *Engine, data []V, key func(V) K) {
	e.checkLen(len(data))
	ukey := codec.Project(key)
	runNetworkSort(e, data, ukey)
	assertSorted(data, ukey)
}

// RadixSortLSD sorts data in increasing order of key with a stable
// least significant byte first radix sort. Byte positions at which all
// keys agree are skipped.
func RadixSortLSD[V any, K codec.Key](e *Engine, data []V, key func(V) K) {
	e.checkLen(len(data))
	ukey := codec.Project(key)
	runRadixSortLSD(e, data, ukey, codec.Width[K]())
	assertSorted(data, ukey)
}

// RadixSortMSD sorts data in increasing order of key with a most
// significant byte first radix sort, which finishes small buckets with
// insertion sort or sorting networks.
func RadixSortMSD[V any, K codec.Key](e *Engine, data []V, key func(V) K) {
	e.checkLen(len(data))
	ukey := codec.Project(key)
	runRadixSortMSD(e, data, ukey, codec.Width[K]())
	assertSorted(data, ukey)
}

// InsertionSort sorts data in increasing order of key with insertion
// sort. It does not use the scratch buffer of e.
func InsertionSort[V any, K codec.Key](e *Engine, data []V, key func(V) K) {
	e.checkLen(len(data))
	ukey := codec.Project(key)
	insertionSort(data, ukey)
	assertSorted(data, ukey)
}

// DutchFlagSelect is like NthElementByKey, but always determines the
// nth key on a copy of the encoded keys first and then partitions data
// three ways around it.
func DutchFlagSelect[V any, K codec.Key](e *Engine, data []V, nth int, key func(V) K) {
	e.checkNth(len(data), nth)
	ukey := codec.Project(key)
	dutchFlagSelect(&e.scratch, data, nth, ukey, codec.Width[K]())
	assertNthElement(data, nth, ukey)
}

// RadixSelect is like NthElementByKey, but always uses radix selection,
// regardless of the size of data.
func RadixSelect[V any, K codec.Key](e *Engine, data []V, nth int, key func(V) K) {
	e.checkNth(len(data), nth)
	ukey := codec.Project(key)
	radixSelect(&e.scratch, data, nth, ukey, codec.Width[K]())
	assertNthElement(data, nth, ukey)
}
