package sort

import (
	"reflect"
	"sync"
	"unsafe"
)

/*
An Allocator provides the raw memory behind the scratch buffer of an
Engine, in units of 64-bit words.

Allocate returns a slab of at least the requested number of words.
The contents of the slab are not required to be zeroed. Deallocate
receives a slab that the Engine no longer uses; the Engine never
touches it again afterwards.
*/
type Allocator interface {
	Allocate(words int) []uint64
	Deallocate(slab []uint64)
}

// HeapAllocator allocates slabs on the Go heap and leaves deallocated
// slabs to the garbage collector. It is the default Allocator.
type HeapAllocator struct{}

// Allocate implements the method of the Allocator interface.
func (HeapAllocator) Allocate(words int) []uint64 {
	return make([]uint64, words)
}

// Deallocate implements the method of the Allocator interface.
func (HeapAllocator) Deallocate([]uint64) {}

/*
PoolAllocator recycles slabs through a sync.Pool, so that short-lived
engines, for example one per worker goroutine, do not each pay for
fresh scratch memory.

A PoolAllocator is safe for concurrent use by multiple engines. The
zero PoolAllocator is ready to use and must not be copied after first
use.
*/
type PoolAllocator struct {
	pool sync.Pool
}

// Allocate implements the method of the Allocator interface.
func (a *PoolAllocator) Allocate(words int) []uint64 {
	if p, ok := a.pool.Get().(*[]uint64); ok {
		if slab := *p; cap(slab) >= words {
			return slab[:words]
		}
	}
	return make([]uint64, words)
}

// Deallocate implements the method of the Allocator interface.
func (a *PoolAllocator) Deallocate(slab []uint64) {
	if cap(slab) > 0 {
		a.pool.Put(&slab)
	}
}

// scratch is the reusable memory of an Engine. Its capacity only
// grows. Views handed out by keys and values are valid until the next
// call that grows the same slab.
type scratch struct {
	alloc Allocator
	words []uint64

	// typed holds a []V for element types that contain pointers, which
	// cannot live in the word slab without hiding them from the garbage
	// collector.
	typed      any
	typedBytes int
}

func (s *scratch) grow(bytes int) []uint64 {
	words := (bytes + 7) / 8
	if words > len(s.words) {
		if s.words != nil {
			s.alloc.Deallocate(s.words)
		}
		s.words = s.alloc.Allocate(words)[:words]
	}
	return s.words[:words]
}

func (s *scratch) keys(n int) []uint64 {
	return s.grow(8 * n)[:n]
}

func (s *scratch) capacity() int {
	return 8*len(s.words) + s.typedBytes
}

func (s *scratch) release() {
	if s.words != nil {
		s.alloc.Deallocate(s.words)
		s.words = nil
	}
	s.typed, s.typedBytes = nil, 0
}

// values returns a view of n values of type V over the scratch memory.
func values[V any](s *scratch, n int) []V {
	var zero V
	size := int(unsafe.Sizeof(zero))
	switch {
	case size == 0 || n == 0:
		return make([]V, n)
	case bitRelocatable[V]():
		w := s.grow(n * size)
		return unsafe.Slice((*V)(unsafe.Pointer(&w[0])), n)
	default:
		if buf, ok := s.typed.([]V); ok && len(buf) >= n {
			return buf[:n]
		}
		buf := make([]V, n)
		s.typed, s.typedBytes = buf, n*size
		return buf
	}
}

var relocatable sync.Map // reflect.Type -> bool

// bitRelocatable reports whether values of type V can be moved by a
// plain bit copy without the garbage collector having to know, which
// is the case when V contains no pointers.
func bitRelocatable[V any]() bool {
	t := reflect.TypeOf((*V)(nil)).Elem()
	if r, ok := relocatable.Load(t); ok {
		return r.(bool)
	}
	r := pointerFree(t)
	relocatable.Store(t, r)
	return r
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
