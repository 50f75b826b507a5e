package sort

// insertionSort sorts data in place. The key of the element being
// inserted, and the key of the current first element, are evaluated
// only once.
func insertionSort[V any](data []V, ukey func(V) uint64) {
	n := len(data)
	switch {
	case n < 2:
		return
	case n == 2:
		sortFixed(data, ukey)
		return
	}

	first := ukey(data[0])
	for i := 1; i < n; i++ {
		v, k := data[i], ukey(data[i])
		if k < first {
			copy(data[1:i+1], data[:i])
			data[0], first = v, k
			continue
		}
		j := i
		for k < ukey(data[j-1]) {
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
}
