package batch

import "fmt"

// A Segment is the half-open range [Low, High) of a slice.
type Segment struct {
	Low, High int
}

// Len returns the number of elements in s.
func (s Segment) Len() int {
	return s.High - s.Low
}

// Segments returns the consecutive segments delimited by offsets: the
// first from offsets[0] to offsets[1], and so on. Fewer than two
// offsets yield no segments.
//
// Segments panics if offsets are negative or decreasing.
func Segments(offsets ...int) []Segment {
	if len(offsets) < 2 {
		return nil
	}
	if offsets[0] < 0 {
		panic(fmt.Sprintf("invalid segment offset: %v", offsets[0]))
	}
	segs := make([]Segment, len(offsets)-1)
	for i := range segs {
		low, high := offsets[i], offsets[i+1]
		if high < low {
			panic(fmt.Sprintf("invalid range: %v:%v", low, high))
		}
		segs[i] = Segment{low, high}
	}
	return segs
}

// Chunks divides n elements into consecutive segments of size
// elements each. The last segment is shorter if size does not divide
// n.
func Chunks(n, size int) []Segment {
	if size <= 0 {
		panic(fmt.Sprintf("invalid segment size: %v", size))
	}
	if n < 0 {
		panic(fmt.Sprintf("invalid range: 0:%v", n))
	}
	segs := make([]Segment, 0, (n+size-1)/size)
	for low := 0; low < n; low += size {
		segs = append(segs, Segment{low, min(low+size, n)})
	}
	return segs
}

// check panics unless segs are ordered, do not overlap, and lie within
// a slice of length n.
func check(segs []Segment, n int) {
	prev := 0
	for _, s := range segs {
		if (s.Low < prev) || (s.High < s.Low) || (s.High > n) {
			panic(fmt.Sprintf("invalid segment %v:%v after offset %v in range of length %v", s.Low, s.High, prev, n))
		}
		prev = s.High
	}
}
