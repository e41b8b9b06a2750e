package osc

import (
	"math"

	"github.com/cwbudde/algo-osc/core"
	"github.com/cwbudde/algo-osc/interp"
)

// UserWave is a borrowed view of a host-owned single-cycle waveform,
// queried by normalized phase in [0, 1).
//
// The engine never copies or frees the underlying data; the host guarantees
// it outlives every oscillator referencing it.
type UserWave interface {
	Sample(ph float64) float64
}

// SliceWave adapts a single-cycle []float64 as a [UserWave] with linear
// interpolation between adjacent samples.
type SliceWave []float64

// Sample returns the linearly interpolated value at normalized phase ph.
func (w SliceWave) Sample(ph float64) float64 {
	n := len(w)
	if n == 0 {
		return 0
	}

	pos := core.AbsFraction(ph) * float64(n)
	i0 := int(pos)
	if i0 >= n {
		i0 = 0
	}

	i1 := i0 + 1
	if i1 >= n {
		i1 = 0
	}

	return interp.Linear2(pos-math.Floor(pos), w[i0], w[i1])
}

// HermiteWave adapts a single-cycle []float64 as a [UserWave] with cubic
// 4-point interpolation for smoother playback of coarse cycles.
type HermiteWave []float64

// Sample returns the cubic-interpolated value at normalized phase ph.
func (w HermiteWave) Sample(ph float64) float64 {
	n := len(w)
	if n == 0 {
		return 0
	}

	return interp.PeriodicHermite4(w, core.AbsFraction(ph)*float64(n))
}
