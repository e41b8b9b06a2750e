//go:build !fastmath

package wavetable

import "math"

// log2 computes log2(x) with full precision.
func log2(x float64) float64 {
	return math.Log2(x)
}
