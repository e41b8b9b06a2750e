//go:build fastmath

package wavetable

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for log base conversion.
const ln2 = 0.693147180559945309417232121458

// log2 computes log2(x) using fast approximation.
// Band selection tolerates the small error: a flipped band at a boundary
// moves the cutoff by at most one semitone.
func log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}
