package alias

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-osc/internal/testutil"
)

func TestAnalyzeInBandSine(t *testing.T) {
	const sampleRate = 44100.0

	sig := testutil.DeterministicSine(1000, sampleRate, 1, 4096)

	res, err := Analyze(sig, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.TotalEnergy <= 0 {
		t.Fatalf("TotalEnergy = %g, want > 0", res.TotalEnergy)
	}

	// A 1 kHz tone is far below the 20 kHz cutoff. Hann leakage leaves a
	// tiny residue above it, nothing more.
	if res.Ratio > 1e-9 {
		t.Errorf("Ratio = %g, want <= 1e-9", res.Ratio)
	}

	if res.RatioDB > -90 {
		t.Errorf("RatioDB = %g, want <= -90", res.RatioDB)
	}
}

func TestAnalyzeOutOfBandSine(t *testing.T) {
	const sampleRate = 96000.0

	sig := testutil.DeterministicSine(30000, sampleRate, 1, 4096)

	res, err := Analyze(sig, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// Everything lives above the 20 kHz cutoff.
	if res.Ratio < 0.99 {
		t.Errorf("Ratio = %g, want >= 0.99", res.Ratio)
	}
}

func TestAnalyzeCutoffSplitsMixedTones(t *testing.T) {
	const (
		sampleRate = 96000.0
		n          = 8192
	)

	low := testutil.DeterministicSine(1000, sampleRate, 1, n)
	high := testutil.DeterministicSine(30000, sampleRate, 0.5, n)

	sig := make([]float64, n)
	for i := range sig {
		sig[i] = low[i] + high[i]
	}

	res, err := Analyze(sig, Config{SampleRate: sampleRate, CutoffHz: 20000})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// Equal-length sines carry energy proportional to amplitude squared, so
	// the half-amplitude high tone holds roughly 1/5 of the total.
	want := 0.25 / 1.25
	if math.Abs(res.Ratio-want) > 0.02 {
		t.Errorf("Ratio = %g, want %g +/- 0.02", res.Ratio, want)
	}

	if diff := res.TotalEnergy - res.InBandEnergy - res.AliasEnergy; math.Abs(diff) > res.TotalEnergy*1e-12 {
		t.Errorf("energy split does not sum: total %g, in-band %g, alias %g",
			res.TotalEnergy, res.InBandEnergy, res.AliasEnergy)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	res, err := Analyze(make([]float64, 256), Config{SampleRate: 44100})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Ratio != 0 {
		t.Errorf("Ratio = %g, want 0", res.Ratio)
	}

	if !math.IsInf(res.RatioDB, -1) {
		t.Errorf("RatioDB = %g, want -Inf", res.RatioDB)
	}
}

func TestAnalyzeRectangularWindow(t *testing.T) {
	const sampleRate = 44100.0

	// Exactly 32 cycles in 4096 samples, so the tone lands on a bin and the
	// rectangular window produces no leakage at all.
	sig := testutil.DeterministicSine(sampleRate*32/4096, sampleRate, 1, 4096)

	res, err := Analyze(sig, Config{SampleRate: sampleRate, Rectangular: true})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Ratio > 1e-12 {
		t.Errorf("Ratio = %g, want <= 1e-12", res.Ratio)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil, Config{SampleRate: 44100}); err == nil {
		t.Error("Analyze(nil) error = nil, want error")
	}

	if _, err := Analyze([]float64{1}, Config{}); err == nil {
		t.Error("Analyze() with zero sample rate error = nil, want error")
	}

	if _, err := Analyze(make([]float64, 100), Config{SampleRate: 44100, FFTSize: 64}); err == nil {
		t.Error("Analyze() with short FFT size error = nil, want error")
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{1024, 1024},
	}

	for _, c := range cases {
		if got := nextPowerOf2(c.in); got != c.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
