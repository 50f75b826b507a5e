package sort

import "fmt"

// maxNetworkSize is the largest input size covered by the networks
// table.
const maxNetworkSize = 32

// sortFixed sorts data in place with the sorting network for exactly
// len(data) elements. The keys are extracted once up front and
// exchanged together with their elements.
func sortFixed[V any](data []V, ukey func(V) uint64) {
	n := len(data)
	if n < 2 {
		return
	}
	if n > maxNetworkSize {
		panic(fmt.Sprintf("no sorting network for %v elements", n))
	}
	var keys [maxNetworkSize]uint64
	for i := range data {
		keys[i] = ukey(data[i])
	}
	net := networks[n]
	for p := 0; p < len(net); p += 2 {
		i, j := net[p], net[p+1]
		if keys[j] < keys[i] {
			keys[i], keys[j] = keys[j], keys[i]
			data[i], data[j] = data[j], data[i]
		}
	}
}

// merge moves the sorted runs a and b into out, which must have room
// for both. Ties are taken from a first. Only the side that advances
// has its key re-evaluated.
func merge[V any](r relocator[V], a, b, out []V, ukey func(V) uint64) {
	i, j, k := 0, 0, 0
	if len(a) > 0 && len(b) > 0 {
		ka, kb := ukey(a[0]), ukey(b[0])
		for {
			if kb < ka {
				r.one(&out[k], &b[j])
				k++
				j++
				if j == len(b) {
					break
				}
				kb = ukey(b[j])
			} else {
				r.one(&out[k], &a[i])
				k++
				i++
				if i == len(a) {
					break
				}
				ka = ukey(a[i])
			}
		}
	}
	r.span(out[k:], a[i:])
	r.span(out[k+len(a)-i:], b[j:])
}

// mergeRuns merges adjacent pairs of sorted runs of length size from
// src into dst and returns the length of the trailing residual that
// could not be paired.
//
// The residual of the previous pass is passed in as residual. Because
// size doubles between passes, a residual can only grow until it is
// absorbed, so the trailing part of src consists of at most two sorted
// runs: the previous residual, and whatever precedes it.
func mergeRuns[V any](r relocator[V], src, dst []V, size, residual int, ukey func(V) uint64) int {
	n := len(src)
	i := 0
	for ; i < n-size; i += 2 * size {
		end := min(i+2*size, n)
		merge(r, src[i:i+size], src[i+size:end], dst[i:end], ukey)
	}
	if i < n {
		split := n - residual
		merge(r, src[i:split], src[split:n], dst[i:n], ukey)
		return n - i
	}
	return 0
}

// networkSort sorts data with sorting networks on blocks of
// networkCap elements, followed by bottom-up merge passes that
// alternate between data and buf, and returns the number of merge
// passes. buf must be at least as long as data.
func networkSort[V any](data, buf []V, ukey func(V) uint64) (passes int) {
	n := len(data)
	for i := 0; i < n; i += networkCap {
		sortFixed(data[i:min(i+networkCap, n)], ukey)
	}

	r := newRelocator[V]()
	buf = buf[:n]
	size, residual := networkCap, 0
	for size < n {
		residual = mergeRuns(r, data, buf, size, residual, ukey)
		passes++
		size *= 2
		if size >= n {
			r.span(data, buf)
			return
		}
		residual = mergeRuns(r, buf, data, size, residual, ukey)
		passes++
		size *= 2
	}
	return
}
