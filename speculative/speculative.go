/*
Package speculative provides a parallel range predicate that returns as
soon as its result is known.

RangeAnd returns false as soon as any batch reports false, without
waiting for the batches that are still running. It does not stop them;
they run to completion in the background, and their results and panics
are discarded. Predicates must therefore be safe to keep running after
RangeAnd has returned.
*/
package speculative

import (
	"sync"

	"github.com/exascience/keysort/internal"
)

/*
RangeAnd receives a range, a batch count n, and a range predicate f,
divides the range into batches, and invokes the range predicate for
each of these batches in parallel.

The batches are determined by dividing up the size of the range
(high - low) by n. If n is 0, a reasonable default is used that takes
runtime.GOMAXPROCS(0) into account.

RangeAnd returns true if all predicates return true, or false when at
least one of them returns false, without waiting for the others.

RangeAnd panics if high < low, or if n < 0. If a predicate panics
before a false result to its left is known, RangeAnd panics with that
value, with the stack trace of the original panic attached.
*/
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		if n == 1 {
			return f(low, high)
		}
		mid, half := internal.Split(low, high, n)
		if mid >= high {
			return f(low, high)
		}
		var b1 bool
		var p any
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = recur(mid, high, n-half)
		}()
		if !recur(low, mid, half) {
			return false
		}
		wg.Wait()
		if p != nil {
			panic(p)
		}
		return b1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
