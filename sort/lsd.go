package sort

import "github.com/exascience/keysort/codec"

// radixSortLSD is a stable least significant byte first radix sort of
// the low width bytes of the encoded keys. buf must be at least as long
// as data.
//
// All histograms are built in a single pre-pass. Byte positions at
// which every element has the same value would only copy the data
// around, so they are skipped.
func radixSortLSD[V any](data, buf []V, ukey func(V) uint64, width int) {
	n := len(data)
	if n < 2 {
		return
	}

	var counts [8][256]int
	for i := range data {
		u := ukey(data[i])
		for b := 0; b < width; b++ {
			counts[b][codec.NthByte(u, b)]++
		}
	}

	var distinct [8]int
	for b := 0; b < width; b++ {
		offset := 0
		for i, c := range counts[b] {
			counts[b][i] = offset
			offset += c
			if c > 0 {
				distinct[b]++
			}
		}
	}

	r := newRelocator[V]()
	src, dst := data, buf[:n]
	inScratch := false
	for b := 0; b < width; b++ {
		if distinct[b] < 2 {
			continue
		}
		offsets := &counts[b]
		for i := range src {
			k := codec.NthByte(ukey(src[i]), b)
			r.one(&dst[offsets[k]], &src[i])
			offsets[k]++
		}
		src, dst = dst, src
		inScratch = !inScratch
	}
	if inScratch {
		r.span(data, src)
	}
}
