package wavetable

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-osc/core"
	"github.com/cwbudde/algo-osc/interp"
)

// UserSet holds band-limited tables derived from a host-supplied
// single-cycle waveform. Like [Set] it is immutable after construction.
//
// The host's amplitude is preserved: user tables are not re-normalized, so a
// quiet hand-drawn cycle stays quiet across all bands.
type UserSet struct {
	sampleRate float64
	tables     [BandCount][Length]float64
}

// BuildUser generates anti-aliased tables from a single-cycle waveform of
// arbitrary length. The cycle is resampled to the table resolution with
// cubic interpolation, then band-limited per band by spectral truncation.
//
// The input is copied; the caller keeps ownership of cycle.
func BuildUser(cycle []float64, opts ...core.ProcessorOption) (*UserSet, error) {
	if len(cycle) == 0 {
		return nil, fmt.Errorf("wavetable: user cycle must not be empty")
	}

	cfg := core.ApplyProcessorOptions(opts...)

	u := &UserSet{sampleRate: cfg.SampleRate}

	plan, err := algofft.NewPlan64(Length)
	if err != nil {
		return nil, fmt.Errorf("wavetable: create transform plan for user wave: %w", err)
	}

	timeBuf := make([]complex128, Length)

	step := float64(len(cycle)) / Length
	for k := range timeBuf {
		timeBuf[k] = complex(interp.PeriodicHermite4(cycle, float64(k)*step), 0)
	}

	ref := make([]complex128, Length)
	if err := plan.Forward(ref, timeBuf); err != nil {
		return nil, fmt.Errorf("wavetable: forward transform for user wave: %w", err)
	}

	applyThreshold(ref)

	spec := make([]complex128, Length)

	for band := 0; band < BandCount; band++ {
		truncateSpectrum(spec, ref, maxHarmonic(cfg.SampleRate, band))

		if err := plan.Inverse(timeBuf, spec); err != nil {
			return nil, fmt.Errorf("wavetable: inverse transform for user wave band %d: %w", band, err)
		}

		table := u.tables[band][:]
		for k := range table {
			table[k] = real(timeBuf[k])
		}
	}

	return u, nil
}

// SampleRate returns the rate the tables were band-limited for.
func (u *UserSet) SampleRate() float64 {
	return u.sampleRate
}

// Sample returns the band-limited user-wave sample at normalized phase ph,
// selecting the band from freq.
func (u *UserSet) Sample(freq, ph float64) float64 {
	band := BandForFreq(freq)

	return sampleTable(u.tables[band][:], ph)
}

// Band returns the single-cycle table at the given band index. The returned
// slice aliases internal storage and must be treated as read-only.
func (u *UserSet) Band(band int) []float64 {
	if band < 0 || band >= BandCount {
		return nil
	}

	return u.tables[band][:]
}
