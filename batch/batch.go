/*
Package batch sorts and selects many independent segments of a slice
concurrently.

A Runner keeps a pool of sort.Engine values that share their scratch
memory through a sort.PoolAllocator. Each worker takes one engine from
the pool for a whole batch of segments, so engines are never shared
between goroutines.

With WithWorkers(1), all segments are processed in order on the calling
goroutine.
*/
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/exascience/keysort/codec"
	"github.com/exascience/keysort/internal"
	"github.com/exascience/keysort/parallel"
	"github.com/exascience/keysort/sequential"
	"github.com/exascience/keysort/sort"
	"github.com/exascience/keysort/speculative"
)

// A Runner processes segments with a pool of engines. A Runner is safe
// for concurrent use.
type Runner struct {
	workers    int
	logger     *slog.Logger
	engineOpts []sort.Option

	alloc   sort.PoolAllocator
	engines sync.Pool
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of batches the segments are divided
// into. 0 selects a default based on runtime.GOMAXPROCS(0), and 1
// processes all segments sequentially.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithLogger sets the logger for bulk runs. Pass nil to disable
// logging, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithEngineOptions sets options for the engines of the pool. By
// default, engines allocate through an allocator shared by the pool;
// a sort.WithAllocator option overrides that.
func WithEngineOptions(opts ...sort.Option) Option {
	return func(r *Runner) {
		r.engineOpts = append(r.engineOpts, opts...)
	}
}

// New returns a Runner configured by opts.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.workers < 0 {
		panic(fmt.Sprintf("invalid number of workers: %v", r.workers))
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	engineOpts := append([]sort.Option{sort.WithAllocator(&r.alloc)}, r.engineOpts...)
	r.engines.New = func() any {
		return sort.New(engineOpts...)
	}
	return r
}

func (r *Runner) engine() *sort.Engine {
	return r.engines.Get().(*sort.Engine)
}

func (r *Runner) limit() int {
	if r.workers > 0 {
		return r.workers
	}
	return runtime.GOMAXPROCS(0)
}

// each invokes f for every segment, with one engine per batch, and
// returns the left-most error.
func (r *Runner) each(op string, n int, segs []Segment, f func(e *sort.Engine, s Segment) error) error {
	check(segs, n)
	start := time.Now()
	r.logger.Debug("batch run started", "op", op, "segments", len(segs), "elements", n)

	run := parallel.Range
	if r.workers == 1 {
		run = sequential.Range
	}
	err := run(0, len(segs), r.workers, func(low, high int) error {
		e := r.engine()
		defer r.engines.Put(e)
		for _, s := range segs[low:high] {
			if err := f(e, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("batch run failed", "op", op, "error", err)
		return fmt.Errorf("%v of %v segments: %w", op, len(segs), err)
	}

	r.logger.Debug("batch run finished", "op", op, "segments", len(segs), "duration", time.Since(start))
	return nil
}

// mustEach is each for segment functions that cannot fail.
func (r *Runner) mustEach(op string, n int, segs []Segment, f func(e *sort.Engine, s Segment)) {
	err := r.each(op, n, segs, func(e *sort.Engine, s Segment) error {
		f(e, s)
		return nil
	})
	if err != nil {
		panic(err)
	}
}

// SortSegments sorts each segment of data independently, using the
// values as keys, like sort.Sort.
func SortSegments[K codec.Key](r *Runner, data []K, segs []Segment) {
	r.mustEach("sort", len(data), segs, func(e *sort.Engine, s Segment) {
		sort.Sort(e, data[s.Low:s.High])
	})
}

// SortSegmentsByKey sorts each segment of data independently in
// increasing order of key, like sort.SortByKey.
func SortSegmentsByKey[V any, K codec.Key](r *Runner, data []V, segs []Segment, key func(V) K) {
	r.mustEach("sort by key", len(data), segs, func(e *sort.Engine, s Segment) {
		sort.SortByKey(e, data[s.Low:s.High], key)
	})
}

// Median returns the index of the lower median of a segment of length
// n. It is meant to be passed to NthElementSegments.
func Median(n int) int {
	return (n - 1) / 2
}

// NthElementSegments partitions each non-empty segment of data around
// its element at index nth(s.Len()), relative to the start of the
// segment, like sort.NthElementByKey. Empty segments are skipped.
func NthElementSegments[V any, K codec.Key](r *Runner, data []V, segs []Segment, nth func(n int) int, key func(V) K) {
	r.mustEach("nth element", len(data), segs, func(e *sort.Engine, s Segment) {
		if n := s.Len(); n > 0 {
			sort.NthElementByKey(e, data[s.Low:s.High], nth(n), key)
		}
	})
}

/*
SortSegmentsContext is like SortSegmentsByKey, but sorts each segment in
its own task on an errgroup limited to the configured number of
workers, and stops starting new tasks once ctx is done. Segments that
are already being sorted are finished.

It returns nil when all segments are sorted, or an error wrapping the
context error otherwise, in which case some segments may be left
unsorted. A panic in a task is re-raised after all tasks have
finished.
*/
func SortSegmentsContext[V any, K codec.Key](ctx context.Context, r *Runner, data []V, segs []Segment, key func(V) K) error {
	check(segs, len(data))
	start := time.Now()
	r.logger.DebugContext(ctx, "batch run started", "op", "sort by key", "segments", len(segs), "elements", len(data))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit())

	var once sync.Once
	var p any
	var err error
	for _, s := range segs {
		if err = gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			defer func() {
				if q := recover(); q != nil {
					once.Do(func() { p = internal.WrapPanic(q) })
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			e := r.engine()
			defer r.engines.Put(e)
			sort.SortByKey(e, data[s.Low:s.High], key)
			return nil
		})
	}
	if werr := g.Wait(); werr != nil {
		err = werr
	}
	if p != nil {
		panic(p)
	}
	if err != nil {
		r.logger.WarnContext(ctx, "batch run canceled", "op", "sort by key", "error", err)
		return fmt.Errorf("sorting %v segments: %w", len(segs), err)
	}

	r.logger.DebugContext(ctx, "batch run finished", "op", "sort by key", "segments", len(segs), "duration", time.Since(start))
	return nil
}

// IsSorted reports whether data is sorted in increasing order of key,
// like sort.IsSorted. The check is divided into batches that run in
// parallel, and it returns as soon as any batch finds a descent. With a
// single worker, the batches are checked in order on the calling
// goroutine.
func IsSorted[V any, K codec.Key](r *Runner, data []V, key func(V) K) bool {
	// Each batch includes the last element of the previous one.
	sorted := func(low, high int) bool {
		return sort.IsSorted(data[max(low-1, 0):high], key)
	}
	if r.workers == 1 {
		return must(sequential.RangeAnd(0, len(data), 0, func(low, high int) (bool, error) {
			return sorted(low, high), nil
		}))
	}
	return speculative.RangeAnd(0, len(data), r.workers, sorted)
}

// SegmentsSorted reports whether every segment of data is sorted in
// increasing order of key. Unlike IsSorted, it does not require the
// segments to be in order with respect to each other, and it always
// checks all segments.
func SegmentsSorted[V any, K codec.Key](r *Runner, data []V, segs []Segment, key func(V) K) bool {
	check(segs, len(data))
	run := parallel.RangeAnd
	if r.workers == 1 {
		run = sequential.RangeAnd
	}
	return must(run(0, len(segs), r.workers, func(low, high int) (bool, error) {
		for _, s := range segs[low:high] {
			if !sort.IsSorted(data[s.Low:s.High], key) {
				return false, nil
			}
		}
		return true, nil
	}))
}

// must returns ok for predicates that cannot fail, and panics with err
// otherwise.
func must(ok bool, err error) bool {
	if err != nil {
		panic(err)
	}
	return ok
}
