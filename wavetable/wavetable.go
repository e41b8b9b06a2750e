package wavetable

import (
	"math"

	"github.com/cwbudde/algo-osc/core"
	"github.com/cwbudde/algo-osc/interp"
	"github.com/cwbudde/algo-osc/waveform"
)

const (
	// Length is the number of samples in each single-cycle band table.
	Length = 1024

	// SemitonesPerBand controls banding granularity: fundamentals within the
	// same semitone span share one table.
	SemitonesPerBand = 1

	// BandCount is the number of tables per wave shape, covering the MIDI
	// note range. Band selection clamps to [1, BandCount-1].
	BandCount = 128
)

// Set holds the band-limited tables for all band-limitable wave shapes.
// A Set is immutable after construction and safe for concurrent readers.
type Set struct {
	sampleRate float64
	tables     [waveform.BandLimitedCount][BandCount][Length]float64
}

// SampleRate returns the rate the tables were band-limited for.
func (s *Set) SampleRate() float64 {
	return s.sampleRate
}

// Sample returns the band-limited sample for shape at normalized phase ph,
// selecting the band from freq and linearly interpolating between adjacent
// table points. Shapes without tables return 0.
func (s *Set) Sample(shape waveform.Shape, freq, ph float64) float64 {
	row := shape.TableIndex()
	if row < 0 {
		return 0
	}

	band := BandForFreq(freq)

	return sampleTable(s.tables[row][band][:], ph)
}

// Band returns the single-cycle table for shape at the given band index.
// The returned slice aliases internal storage and must be treated as
// read-only. It returns nil for shapes without tables or out-of-range bands.
func (s *Set) Band(shape waveform.Shape, band int) []float64 {
	row := shape.TableIndex()
	if row < 0 || band < 0 || band >= BandCount {
		return nil
	}

	return s.tables[row][band][:]
}

// maxHarmonic returns the highest harmonic number that stays below Nyquist
// for the band's representative frequency, bounded by the table resolution.
func maxHarmonic(sampleRate float64, band int) int {
	freq := FreqForBand(band)
	h := int(sampleRate / 2 / freq)

	return core.ClampInt(h, 1, Length/2-1)
}

// sampleTable looks up a single-cycle table at normalized phase ph with
// linear interpolation. Phases outside [0, 1) wrap.
func sampleTable(table []float64, ph float64) float64 {
	pos := ph * Length
	base := math.Floor(pos)
	frac := pos - base

	i0 := int(base) % Length
	if i0 < 0 {
		i0 += Length
	}

	i1 := i0 + 1
	if i1 >= Length {
		i1 = 0
	}

	return interp.Linear2(frac, table[i0], table[i1])
}
