// Package internal holds the batching arithmetic and panic handling
// shared by the parallel, sequential, and speculative packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account. The result
// never exceeds the size of a non-empty range.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		batches = min(batches, size)
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// Split divides n > 1 batches over [low, high) into a left part of half
// batches ending at mid, and a right part of n - half batches starting
// at mid. If mid >= high, the range is too small to be split.
func Split(low, high, n int) (mid, half int) {
	if n < 1 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	batchSize := ((high - low - 1) / n) + 1
	half = n / 2
	return low + batchSize*half, half
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic, so that a
// panic re-raised in another goroutine still shows where it happened.
func WrapPanic(p any) any {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
