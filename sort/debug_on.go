//go:build keysortdebug

package sort

// With the keysortdebug tag, every operation checks its own result, and
// networkSort uses small blocks so that tests reach its merge passes
// with small inputs.
const (
	debug      = true
	networkCap = 8
)
