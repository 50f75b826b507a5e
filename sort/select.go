package sort

import "github.com/exascience/keysort/codec"

// dutchFlagSelect finds the key of rank nth by narrowing a copy of the
// encoded keys byte by byte, then partitions data three ways around
// that key.
func dutchFlagSelect[V any](s *scratch, data []V, nth int, ukey func(V) uint64, width int) {
	n := len(data)
	keys := s.keys(n)

	var counts [256]int
	top := width - 1
	for i := range data {
		keys[i] = ukey(data[i])
		counts[codec.NthByte(keys[i], top)]++
	}

	rank := nth
	for b := top; b >= 0; b-- {
		median, bucket := 0, 0
		for i, c := range counts {
			if rank < c {
				median, bucket = i, c
				break
			}
			rank -= c
		}

		counts = [256]int{}
		next := max(b-1, 0)
		count := 0
		for j := 0; count < bucket; j++ {
			u := keys[j]
			keys[count] = u
			if int(codec.NthByte(u, b)) == median {
				counts[codec.NthByte(u, next)]++
				count++
			}
		}
		if count == 1 {
			break
		}
	}

	// keys and the values view below may share memory, so the pivot is
	// taken out first.
	pivot := keys[0]
	partition3(s, data, pivot, nth-rank, ukey)
}

// partition3 moves the elements of data with keys below, equal to,
// and above pivot into three consecutive groups, the equal group
// starting at index less.
func partition3[V any](s *scratch, data []V, pivot uint64, less int, ukey func(V) uint64) {
	n := len(data)
	buf := values[V](s, n)
	r := newRelocator[V]()
	front, back, mid := 0, n-1, less
	for i := range data {
		var idx int
		switch k := ukey(data[i]); {
		case k < pivot:
			idx = front
			front++
		case k > pivot:
			idx = back
			back--
		default:
			idx = mid
			mid++
		}
		r.one(&buf[idx], &data[i])
	}
	r.span(data, buf)
}

// levels records, per byte position b, the element range [beg[b],
// end[b]) that holds the bucket containing the target rank after byte
// b was distributed. Index width covers the whole input.
type levels struct {
	beg, end [9]int
}

// selectByte distributes the live range of level b+1 from src into dst
// by byte b, narrows the live range to the bucket containing nth, and
// counts byte b-1 of the elements in that bucket for the next level.
//
// counts alternates between its two halves from level to level: one
// holds the histogram of the current byte, the other accumulates the
// histogram of the next.
func selectByte[V any](r relocator[V], src, dst []V, nth int, ukey func(V) uint64, width, b int, counts *[2][256]int, lv *levels) {
	active := (width - 1 - b) & 1
	cur, nxt := &counts[active], &counts[active^1]

	total, median := lv.beg[b+1], 0
	for i := range cur {
		c := cur[i]
		cur[i] = total
		nxt[i] = 0
		if total <= nth {
			median = i
		}
		total += c
	}
	lv.beg[b] = cur[median]

	next := max(b-1, 0)
	for j := lv.beg[b+1]; j < lv.end[b+1]; j++ {
		u := ukey(src[j])
		k := codec.NthByte(u, b)
		r.one(&dst[cur[k]], &src[j])
		cur[k]++
		if int(k) == median {
			nxt[codec.NthByte(u, next)]++
		}
	}
	lv.end[b] = cur[median]
}

// unwind brings all elements back into the buffer that holds the input
// of the outermost level. Starting at level i, the range of each level
// is moved into the buffer that the enclosing level wrote its own
// result to, so that after the last level every element that was left
// behind in either buffer is in place.
func unwind[V any](r relocator[V], c1, c2 []V, i, width int, lv *levels) {
	for ; i <= width; i++ {
		beg, end := lv.beg[i], lv.end[i]
		r.span(c1[beg:end], c2[beg:end])
		if i++; i > width {
			return
		}
		beg, end = lv.beg[i], lv.end[i]
		r.span(c2[beg:end], c1[beg:end])
	}
}

// radixSelect distributes data byte by byte, most significant first,
// alternating between data and scratch, and only keeps distributing
// the bucket that contains nth.
func radixSelect[V any](s *scratch, data []V, nth int, ukey func(V) uint64, width int) {
	n := len(data)
	top := width - 1

	var counts [2][256]int
	for i := range data {
		counts[0][codec.NthByte(ukey(data[i]), top)]++
	}

	buf := values[V](s, n)
	r := newRelocator[V]()
	var lv levels
	lv.end[width] = n

	for b := top; ; {
		selectByte(r, data, buf, nth, ukey, width, b, &counts, &lv)
		if lv.end[b]-lv.beg[b] == 1 || b == 0 {
			unwind(r, data, buf, b+1, width, &lv)
			return
		}
		b--
		selectByte(r, buf, data, nth, ukey, width, b, &counts, &lv)
		if lv.end[b]-lv.beg[b] == 1 || b == 0 {
			unwind(r, buf, data, b+1, width, &lv)
			return
		}
		b--
	}
}
