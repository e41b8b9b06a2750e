package waveform

import (
	"math"

	"github.com/cwbudde/algo-osc/core"
)

// Shape identifies a waveform family.
type Shape int

// Supported wave shapes. Sine and WhiteNoise are computed analytically at
// render time; Triangle through Exponential are band-limitable and own a set
// of precomputed tables; UserDefined delegates to a host-supplied waveform.
const (
	Sine Shape = iota
	Triangle
	Saw
	Square
	MoogSaw
	Exponential
	WhiteNoise
	UserDefined

	ShapeCount
)

// BandLimitedCount is the number of shapes backed by band-limited tables.
const BandLimitedCount = int(Exponential-Triangle) + 1

var shapeNames = [ShapeCount]string{
	"Sine",
	"Triangle",
	"Saw",
	"Square",
	"MoogSaw",
	"Exponential",
	"WhiteNoise",
	"UserDefined",
}

// String returns the shape name, or "Unknown" for out-of-range values.
func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "Unknown"
	}

	return shapeNames[s]
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Clamp returns s limited to the defined shape range.
func Clamp(s Shape) Shape {
	if s < 0 {
		return Sine
	}

	if s >= ShapeCount {
		return ShapeCount - 1
	}

	return s
}

// BandLimited reports whether s is backed by band-limited tables.
func (s Shape) BandLimited() bool {
	return s >= Triangle && s <= Exponential
}

// TableIndex maps a band-limitable shape to its table row in [0, BandLimitedCount).
// It returns -1 for shapes without tables.
func (s Shape) TableIndex() int {
	if !s.BandLimited() {
		return -1
	}

	return int(s - Triangle)
}

// SineSample evaluates a unit sine at normalized phase ph (period 1.0).
func SineSample(ph float64) float64 {
	return math.Sin(ph * 2 * math.Pi)
}

// TriangleSample evaluates a unit triangle at normalized phase ph.
// The cycle rises from 0 to 1 over the first quarter, falls to -1 at three
// quarters and returns to 0.
func TriangleSample(ph float64) float64 {
	ph = core.AbsFraction(ph)
	if ph <= 0.25 {
		return ph * 4
	}

	if ph <= 0.75 {
		return 2 - ph*4
	}

	return ph*4 - 4
}

// SawSample evaluates a unit rising sawtooth at normalized phase ph.
func SawSample(ph float64) float64 {
	return -1 + core.AbsFraction(ph)*2
}

// SquareSample evaluates a unit square at normalized phase ph.
// The first half cycle is +1, the second half -1.
func SquareSample(ph float64) float64 {
	if core.AbsFraction(ph) > 0.5 {
		return -1
	}

	return 1
}

// MoogSawSample evaluates the asymmetric "Moog" saw variant: a fast rise over
// the first half cycle followed by a linear fall.
func MoogSawSample(ph float64) float64 {
	ph = core.AbsFraction(ph)
	if ph < 0.5 {
		return -1 + ph*4
	}

	return 1 - 2*ph
}

// ExpSample evaluates a parabolic-segment waveform with exponential-like
// curvature, symmetric about the half cycle.
func ExpSample(ph float64) float64 {
	ph = core.AbsFraction(ph)
	if ph > 0.5 {
		ph = 1 - ph
	}

	return -1 + 8*ph*ph
}

// Sample evaluates the analytic, full-bandwidth form of shape at normalized
// phase ph. WhiteNoise and UserDefined have no analytic form here and
// return 0; callers handle them separately.
func Sample(shape Shape, ph float64) float64 {
	switch shape {
	case Sine:
		return SineSample(ph)
	case Triangle:
		return TriangleSample(ph)
	case Saw:
		return SawSample(ph)
	case Square:
		return SquareSample(ph)
	case MoogSaw:
		return MoogSawSample(ph)
	case Exponential:
		return ExpSample(ph)
	default:
		return 0
	}
}
