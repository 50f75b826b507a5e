package speculative_test

import (
	"testing"
	"time"

	"github.com/exascience/keysort/speculative"
)

func TestRangeAnd(t *testing.T) {
	all := func(low, high int) bool { return true }
	if !speculative.RangeAnd(0, 1000, 0, all) {
		t.Error("all batches true, got false")
	}
	if !speculative.RangeAnd(0, 0, 0, all) {
		t.Error("empty range, got false")
	}
}

func TestRangeAndEarly(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	done := make(chan bool, 1)
	go func() {
		done <- speculative.RangeAnd(0, 100, 2, func(low, high int) bool {
			if low == 0 {
				return false
			}
			<-release
			return true
		})
	}()
	select {
	case ok := <-done:
		if ok {
			t.Error("got true, want false")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("RangeAnd waited for a blocked batch")
	}
}
