package batch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/keysort/sort"
)

func randomInts(seed int64, n int) []int64 {
	r := rand.New(rand.NewSource(seed))
	data := make([]int64, n)
	for i := range data {
		data[i] = r.Int63n(1<<40) - 1<<39
	}
	return data
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments())
	assert.Nil(t, Segments(5))
	assert.Equal(t, []Segment{{0, 3}, {3, 3}, {3, 10}}, Segments(0, 3, 3, 10))
	assert.Panics(t, func() { Segments(0, 5, 4) })
	assert.Panics(t, func() { Segments(-1, 5) })
}

func TestChunks(t *testing.T) {
	assert.Equal(t, []Segment{{0, 4}, {4, 8}, {8, 10}}, Chunks(10, 4))
	assert.Empty(t, Chunks(0, 4))
	assert.Panics(t, func() { Chunks(10, 0) })
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0, Median(1))
	assert.Equal(t, 0, Median(2))
	assert.Equal(t, 1, Median(3))
	assert.Equal(t, 4999, Median(10000))
}

func TestSortSegments(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		data := randomInts(1, 20000)
		segs := Chunks(len(data), 1500)
		want := slices.Clone(data)
		for _, s := range segs {
			slices.Sort(want[s.Low:s.High])
		}

		SortSegments(New(WithWorkers(workers)), data, segs)
		require.Equal(t, want, data, "workers: %v", workers)
	}
}

func TestSortSegmentsByKey(t *testing.T) {
	type item struct {
		name  string
		score float32
	}
	r := rand.New(rand.NewSource(2))
	data := make([]item, 5000)
	for i := range data {
		data[i] = item{string(rune('a' + i%26)), float32(r.NormFloat64())}
	}
	score := func(it item) float32 { return it.score }
	segs := Segments(0, 10, 10, 700, 5000)

	runner := New(WithWorkers(3))
	SortSegmentsByKey(runner, data, segs, score)
	for _, s := range segs {
		assert.True(t, sort.IsSorted(data[s.Low:s.High], score), "segment %v", s)
	}
}

func TestNthElementSegments(t *testing.T) {
	data := randomInts(3, 30000)
	segs := Segments(0, 1, 47, 48, 5000, 5000, 30000)
	want := slices.Clone(data)
	for _, s := range segs {
		slices.Sort(want[s.Low:s.High])
	}

	NthElementSegments(New(), data, segs, Median, sort.Identity[int64])
	for _, s := range segs {
		n := s.Len()
		if n == 0 {
			continue
		}
		m := s.Low + Median(n)
		assert.Equal(t, want[m], data[m], "segment %v", s)
		assert.True(t, sort.IsNthElement(data[s.Low:s.High], Median(n), sort.Identity[int64]), "segment %v", s)
	}
}

func TestInvalidSegments(t *testing.T) {
	runner := New()
	data := make([]int32, 10)
	assert.Panics(t, func() { SortSegments(runner, data, []Segment{{0, 11}}) })
	assert.Panics(t, func() { SortSegments(runner, data, []Segment{{0, 5}, {4, 8}}) })
	assert.Panics(t, func() { SortSegments(runner, data, []Segment{{5, 4}}) })
	assert.Panics(t, func() { New(WithWorkers(-1)) })
}

func TestWorkerPanic(t *testing.T) {
	data := []int{3, 2, 1}
	segs := Segments(0, 1, 3)
	nth := func(n int) int { return n }
	assert.Panics(t, func() {
		NthElementSegments(New(WithWorkers(2)), data, segs, nth, sort.Identity[int])
	})
}

func TestSortSegmentsContext(t *testing.T) {
	data := randomInts(4, 10000)
	segs := Chunks(len(data), 1000)
	key := sort.Identity[int64]

	err := SortSegmentsContext(context.Background(), New(WithWorkers(4)), data, segs, key)
	require.NoError(t, err)
	for _, s := range segs {
		assert.True(t, sort.IsSorted(data[s.Low:s.High], key), "segment %v", s)
	}
}

func TestSortSegmentsContextCanceled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	data := randomInts(5, 10000)
	segs := Chunks(len(data), 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := SortSegmentsContext(ctx, New(WithLogger(logger)), data, segs, sort.Identity[int64])
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, buf.String(), "batch run canceled")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SortSegments(New(WithLogger(logger)), randomInts(6, 100), Chunks(100, 10))
	assert.Contains(t, buf.String(), "batch run started")
	assert.Contains(t, buf.String(), "batch run finished")
	assert.Contains(t, buf.String(), "segments=10")
}

func TestIsSorted(t *testing.T) {
	data := randomInts(7, 100000)
	slices.Sort(data)
	key := sort.Identity[int64]
	for _, workers := range []int{0, 1, 8} {
		runner := New(WithWorkers(workers))
		assert.True(t, IsSorted(runner, data, key), "workers: %v", workers)
		assert.True(t, IsSorted(runner, data[:0], key), "workers: %v", workers)
	}

	// A descent exactly at a batch boundary.
	data[50000] = data[49999] - 1
	for _, workers := range []int{1, 8} {
		assert.False(t, IsSorted(New(WithWorkers(workers)), data, key), "workers: %v", workers)
	}
}

func TestSegmentsSorted(t *testing.T) {
	data := randomInts(10, 20000)
	segs := Chunks(len(data), 2500)
	key := sort.Identity[int64]
	for _, workers := range []int{0, 1, 4} {
		runner := New(WithWorkers(workers))
		work := slices.Clone(data)
		assert.False(t, SegmentsSorted(runner, work, segs, key), "workers: %v", workers)

		SortSegments(runner, work, segs)
		assert.True(t, SegmentsSorted(runner, work, segs, key), "workers: %v", workers)
		assert.False(t, IsSorted(runner, work, key), "workers: %v", workers)

		last := segs[len(segs)-1]
		work[last.High-1], work[last.Low] = work[last.Low], work[last.High-1]
		assert.False(t, SegmentsSorted(runner, work, segs, key), "workers: %v", workers)
	}
	assert.Panics(t, func() { SegmentsSorted(New(), data, []Segment{{0, len(data) + 1}}, key) })
}

func TestEachError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	left, right := errors.New("left"), errors.New("right")
	segs := Chunks(100, 10)
	for _, workers := range []int{1, 4} {
		runner := New(WithWorkers(workers), WithLogger(logger))
		err := runner.each("fail", 100, segs, func(e *sort.Engine, s Segment) error {
			switch s.Low {
			case 20:
				return left
			case 90:
				return right
			}
			return nil
		})
		require.Error(t, err, "workers: %v", workers)
		assert.ErrorIs(t, err, left, "workers: %v", workers)
	}
	assert.Contains(t, buf.String(), "batch run failed")
}

func TestEngineOptions(t *testing.T) {
	runner := New(WithWorkers(1), WithEngineOptions(sort.WithMaxLen(100)))
	data := randomInts(8, 1000)
	assert.Panics(t, func() { SortSegments(runner, data, Chunks(len(data), 101)) })
	assert.NotPanics(t, func() { SortSegments(runner, data, Chunks(len(data), 100)) })
}

func BenchmarkSortSegments(b *testing.B) {
	orgData := randomInts(9, 1<<20)
	data := make([]int64, len(orgData))
	segs := Chunks(len(data), 1<<12)

	for _, workers := range []int{1, 0} {
		runner := New(WithWorkers(workers))
		name := "Sequential"
		if workers != 1 {
			name = "Parallel"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(data, orgData)
				b.StartTimer()
				SortSegments(runner, data, segs)
			}
		})
	}
}
