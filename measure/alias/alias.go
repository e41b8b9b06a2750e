package alias

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const defaultCutoffHz = 20000.0

// Config holds aliasing measurement parameters.
type Config struct {
	// SampleRate of the analyzed signal in Hz. Required.
	SampleRate float64

	// CutoffHz separates in-band from alias energy. Spectral energy above
	// this frequency counts as aliasing. Default 20 kHz.
	CutoffHz float64

	// FFTSize used for analysis. Defaults to the next power of two covering
	// the signal.
	FFTSize int

	// Rectangular disables the Hann analysis window.
	Rectangular bool
}

// Result holds aliasing measurement results.
type Result struct {
	// TotalEnergy is the spectral energy across all analyzed bins.
	TotalEnergy float64

	// InBandEnergy is the energy at and below the cutoff.
	InBandEnergy float64

	// AliasEnergy is the energy above the cutoff.
	AliasEnergy float64

	// Ratio is AliasEnergy / TotalEnergy, 0 for silent input.
	Ratio float64

	// RatioDB is Ratio expressed in dB, -Inf for alias-free signals.
	RatioDB float64
}

// Analyze windows and transforms signal, then reports how much of its
// spectral energy lies above the configured cutoff frequency.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("alias: signal must not be empty")
	}

	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("alias: sample rate must be > 0: %f", cfg.SampleRate)
	}

	cutoff := cfg.CutoffHz
	if cutoff <= 0 {
		cutoff = defaultCutoffHz
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize < len(signal) {
		return Result{}, fmt.Errorf("alias: FFT size %d shorter than signal %d", fftSize, len(signal))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("alias: create transform plan: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		w := 1.0
		if !cfg.Rectangular && len(signal) > 1 {
			// Hann window
			w = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(len(signal)-1))
		}

		inData[i] = complex(v*w, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("alias: forward transform: %w", err)
	}

	binHz := cfg.SampleRate / float64(fftSize)
	cutoffBin := int(cutoff / binHz)

	var res Result

	for bin := 0; bin <= fftSize/2; bin++ {
		x := out[bin]
		p := real(x)*real(x) + imag(x)*imag(x)

		res.TotalEnergy += p
		if bin <= cutoffBin {
			res.InBandEnergy += p
		} else {
			res.AliasEnergy += p
		}
	}

	if res.TotalEnergy > 0 {
		res.Ratio = res.AliasEnergy / res.TotalEnergy
	}

	if res.Ratio > 0 {
		res.RatioDB = 10 * math.Log10(res.Ratio)
	} else {
		res.RatioDB = math.Inf(-1)
	}

	return res, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
