package sort

// A relocator moves elements between the caller's range and scratch
// memory. Every slot that is moved from is treated as uninitialized
// afterwards and is only written to again.
//
// For element types that contain pointers, the source slot is cleared
// after each move, so that scratch memory never keeps caller objects
// reachable once a call has finished.
type relocator[V any] struct {
	release bool
}

func newRelocator[V any]() relocator[V] {
	return relocator[V]{release: !bitRelocatable[V]()}
}

func (r relocator[V]) one(dst, src *V) {
	*dst = *src
	if r.release {
		var zero V
		*src = zero
	}
}

// span moves all of src to the front of dst. dst must not be shorter
// than src, and the two must not overlap.
func (r relocator[V]) span(dst, src []V) {
	copy(dst, src)
	if r.release {
		clear(src)
	}
}
