package sort

import "github.com/exascience/keysort/codec"

// Buckets of at most this many elements at the third level of
// radixSortMSD and below are finished with a sorting network.
const msdLeafSize = 4

// insertionThreshold is the size below which counting sort setup costs
// more than it saves, for keys of the given width in bytes.
func insertionThreshold(width int) int {
	return 12 * width
}

// byteSortMSD distributes src into dst by byte b of the encoded keys.
// On return, counts[s] is the end offset of bucket s, and [beg, end)
// is the range of bucket indices that hold at least one element
// (buckets inside that range may still be empty).
//
// Small inputs are insertion sorted in place in src instead, and
// reported with end == 0.
func byteSortMSD[V any](r relocator[V], src, dst []V, ukey func(V) uint64, width, b int, counts *[256]int) (beg, end int) {
	n := len(src)
	if n < insertionThreshold(width) {
		insertionSort(src, ukey)
		return 0, 0
	}

	for i := range src {
		counts[codec.NthByte(ukey(src[i]), b)]++
	}
	for accum := 0; accum < n; end++ {
		c := counts[end]
		counts[end] = accum
		if accum == 0 {
			beg = end
		}
		accum += c
	}

	for i := range src {
		k := codec.NthByte(ukey(src[i]), b)
		r.one(&dst[counts[k]], &src[i])
		counts[k]++
	}
	return beg, end
}

// radixSortMSD sorts data by the encoded key bytes b down to 0, most
// significant first, using buf as scratch of the same length.
//
// Each call consumes two byte levels, the first from data into buf and
// the second from buf back into data, so that every recursive call
// starts and ends with its elements in data.
func radixSortMSD[V any](r relocator[V], data, buf []V, ukey func(V) uint64, width, b int) {
	var counts [256]int
	beg, end := byteSortMSD(r, data, buf, ukey, width, b, &counts)
	if end == 0 {
		return
	}
	if b == 0 {
		r.span(data, buf)
		return
	}

	lo := 0
	for s := beg; s < end; lo, s = counts[s], s+1 {
		hi := counts[s]
		if lo == hi {
			continue
		}
		subData, subBuf := data[lo:hi], buf[lo:hi]

		var subCounts [256]int
		subBeg, subEnd := byteSortMSD(r, subBuf, subData, ukey, width, b-1, &subCounts)
		if subEnd == 0 {
			r.span(subData, subBuf)
			continue
		}
		if b == 1 {
			continue
		}

		subLo := 0
		for ss := subBeg; ss < subEnd; subLo, ss = subCounts[ss], ss+1 {
			subHi := subCounts[ss]
			if subHi-subLo <= msdLeafSize {
				sortFixed(subData[subLo:subHi], ukey)
				continue
			}
			radixSortMSD(r, subData[subLo:subHi], subBuf[subLo:subHi], ukey, width, b-2)
		}
	}
}
