package wavetable

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-osc/core"
	"github.com/cwbudde/algo-osc/waveform"
)

// spectralThreshold drops spectrum bins below this fraction of the peak
// magnitude on the truncation path. The error is far below audibility and
// keeps the low bands from accumulating numeric dust.
const spectralThreshold = 1e-6

// Build generates the band-limited tables for all band-limitable wave
// shapes. Bands are generated from lowest frequency (most harmonics
// retained) to highest (fewest, smoothest), each normalized to unit peak.
//
// This is the offline path: it allocates and transforms freely and is meant
// to run once per process, typically through [Shared].
func Build(opts ...core.ProcessorOption) (*Set, error) {
	buildCount.Add(1)

	cfg := core.ApplyProcessorOptions(opts...)

	s := &Set{sampleRate: cfg.SampleRate}

	var g errgroup.Group
	for shape := waveform.Triangle; shape <= waveform.Exponential; shape++ {
		g.Go(func() error {
			return s.buildShape(shape)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

// buildShape fills one table row. Triangle, saw and square have known
// Fourier series and are synthesized directly in the spectral domain; the
// remaining shapes go through forward-transform truncation of the analytic
// full-bandwidth cycle.
func (s *Set) buildShape(shape waveform.Shape) error {
	plan, err := algofft.NewPlan64(Length)
	if err != nil {
		return fmt.Errorf("wavetable: create transform plan for %s: %w", shape, err)
	}

	spec := make([]complex128, Length)
	timeBuf := make([]complex128, Length)

	// Full-bandwidth reference spectrum for the truncation path.
	var ref []complex128
	if !hasHarmonicSeries(shape) {
		for k := range timeBuf {
			ph := float64(k) / Length
			timeBuf[k] = complex(waveform.Sample(shape, ph), 0)
		}

		ref = make([]complex128, Length)
		if err := plan.Forward(ref, timeBuf); err != nil {
			return fmt.Errorf("wavetable: forward transform for %s: %w", shape, err)
		}

		applyThreshold(ref)
	}

	row := shape.TableIndex()

	for band := 0; band < BandCount; band++ {
		maxH := maxHarmonic(s.sampleRate, band)

		if ref == nil {
			harmonicSpectrum(spec, shape, maxH)
		} else {
			truncateSpectrum(spec, ref, maxH)
		}

		if err := plan.Inverse(timeBuf, spec); err != nil {
			return fmt.Errorf("wavetable: inverse transform for %s band %d: %w", shape, band, err)
		}

		table := s.tables[row][band][:]
		for k := range table {
			table[k] = real(timeBuf[k])
		}

		normalizeUnitPeak(table)
	}

	return nil
}

// hasHarmonicSeries reports whether the shape's Fourier series is known in
// closed form.
func hasHarmonicSeries(shape waveform.Shape) bool {
	switch shape {
	case waveform.Triangle, waveform.Saw, waveform.Square:
		return true
	default:
		return false
	}
}

// harmonicSpectrum writes the truncated closed-form series for shape into
// spec: sine terms up to and including harmonic maxH, nothing above.
func harmonicSpectrum(spec []complex128, shape waveform.Shape, maxH int) {
	for i := range spec {
		spec[i] = 0
	}

	n := len(spec)
	for h := 1; h <= maxH && h < n/2; h++ {
		var amp float64

		switch shape {
		case waveform.Saw:
			// all harmonics, amplitude 1/n
			amp = -2 / (math.Pi * float64(h))
		case waveform.Square:
			// odd harmonics, amplitude 1/n
			if h%2 == 1 {
				amp = 4 / (math.Pi * float64(h))
			}
		case waveform.Triangle:
			// odd harmonics, amplitude 1/n^2, alternating sign
			if h%2 == 1 {
				amp = 8 / (math.Pi * math.Pi * float64(h) * float64(h))
				if h%4 == 3 {
					amp = -amp
				}
			}
		}

		if amp == 0 {
			continue
		}

		// A*sin(2*pi*h*x) as a conjugate-symmetric bin pair.
		c := amp * float64(n) / 2
		spec[h] = complex(0, -c)
		spec[n-h] = complex(0, c)
	}
}

// truncateSpectrum copies ref into spec, zeroing every bin whose harmonic
// number exceeds maxH. DC is kept; shapes with offset cycles rely on it.
func truncateSpectrum(spec, ref []complex128, maxH int) {
	n := len(ref)

	spec[0] = ref[0]
	for h := 1; h <= n/2; h++ {
		if h <= maxH {
			spec[h] = ref[h]
			if h < n-h {
				spec[n-h] = ref[n-h]
			}
		} else {
			spec[h] = 0
			if h < n-h {
				spec[n-h] = 0
			}
		}
	}
}

// applyThreshold zeroes bins with negligible magnitude relative to the peak.
func applyThreshold(spec []complex128) {
	n := len(spec)

	re := make([]float64, n)
	im := make([]float64, n)
	mag := make([]float64, n)

	for i, c := range spec {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(mag, re, im)

	peak := 0.0
	for _, m := range mag {
		if m > peak {
			peak = m
		}
	}

	if peak == 0 {
		return
	}

	cut := peak * spectralThreshold
	for i, m := range mag {
		if m < cut {
			spec[i] = 0
		}
	}
}

// normalizeUnitPeak scales table in place to a peak amplitude of 1.
func normalizeUnitPeak(table []float64) {
	peak := 0.0
	for _, v := range table {
		av := math.Abs(v)
		if av > peak {
			peak = av
		}
	}

	if peak == 0 {
		return
	}

	vecmath.ScaleBlock(table, table, 1/peak)
}
