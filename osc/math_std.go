//go:build !fastmath

package osc

import "math"

// pow2 computes 2^x with full precision.
func pow2(x float64) float64 {
	return math.Pow(2, x)
}
