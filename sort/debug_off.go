//go:build !keysortdebug

package sort

const (
	debug = false

	// networkCap is the block size networkSort sorts with a single
	// network before merging.
	networkCap = maxNetworkSize
)
