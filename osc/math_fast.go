//go:build fastmath

package osc

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for base conversion.
const ln2 = 0.693147180559945309417232121458

// pow2 computes 2^x using fast approximation. Detune conversion runs once
// per render call, but hosts sweeping detune at audio rate benefit.
func pow2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
