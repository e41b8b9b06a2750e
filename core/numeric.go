package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Fraction returns the fractional part of x with the sign of x.
func Fraction(x float64) float64 {
	return x - math.Trunc(x)
}

// AbsFraction returns the fractional part of x wrapped into [0, 1).
// This is the normalized-phase wrap used throughout the oscillator code.
func AbsFraction(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		// Floor rounding can leave exactly 1.0 for tiny negative x.
		f = 0
	}

	return f
}
