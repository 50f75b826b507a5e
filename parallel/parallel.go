// Package parallel invokes range functions over batches of an index
// range in parallel.
//
// Package batch uses it to sort or select many independent segments,
// with one batch of segments per goroutine.
package parallel

import (
	"sync"

	"github.com/exascience/keysort/internal"
)

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches in parallel, covering the half-open interval
// from low to high, including low but excluding high.
//
// The batches are determined by dividing up the size of the range
// (high - low) by n. If n is 0, a reasonable default is used that
// takes runtime.GOMAXPROCS(0) into account.
//
// Range returns only when all range functions have terminated,
// returning the left-most error value that is different from nil.
//
// Range panics if high < low, or if n < 0. If one or more range
// function invocations panic, Range eventually panics with the
// left-most recovered panic value, with the stack trace of the
// original panic attached.
func Range(low, high, n int, f func(low, high int) error) error {
	var recur func(int, int, int) error
	recur = func(low, high, n int) error {
		if n == 1 {
			return f(low, high)
		}
		mid, half := internal.Split(low, high, n)
		if mid >= high {
			return f(low, high)
		}
		var err1 error
		var p any
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			err1 = recur(mid, high, n-half)
		}()
		err0 := recur(low, mid, half)
		wg.Wait()
		if p != nil {
			panic(p)
		}
		if err0 != nil {
			return err0
		}
		return err1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeAnd is like Range, but invokes a range predicate for each batch
// and combines all results with the && operator. All predicates are
// invoked, even if one of them returns false early; see
// speculative.RangeAnd for a variant that returns early instead.
func RangeAnd(low, high, n int, f func(low, high int) (bool, error)) (bool, error) {
	var recur func(int, int, int) (bool, error)
	recur = func(low, high, n int) (bool, error) {
		if n == 1 {
			return f(low, high)
		}
		mid, half := internal.Split(low, high, n)
		if mid >= high {
			return f(low, high)
		}
		var b1 bool
		var err1 error
		var p any
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1, err1 = recur(mid, high, n-half)
		}()
		b0, err0 := recur(low, mid, half)
		wg.Wait()
		if p != nil {
			panic(p)
		}
		if err0 != nil {
			return b0 && b1, err0
		}
		return b0 && b1, err1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
