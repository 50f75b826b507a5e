// Package sequential provides sequential implementations of the range
// functions of package parallel. Package batch runs on them when it is
// configured with a single worker, which keeps results reproducible
// for testing and debugging.
package sequential

import "github.com/exascience/keysort/internal"

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches in order, covering the half-open interval from
// low to high.
//
// Range returns the left-most error value that is different from nil,
// after all batches have been processed.
//
// Range panics if high < low, or if n < 0.
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
		err0 := recur(low, mid, half)
		err1 := recur(mid, high, n-half)
		if err0 != nil {
			return err0
		}
		return err1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeAnd is like Range, but invokes a range predicate for each batch
// and combines all results with the && operator. It stops at the first
// batch that returns false or an error.
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
		if ok, err := recur(low, mid, half); !ok || err != nil {
			return ok, err
		}
		return recur(mid, high, n-half)
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
