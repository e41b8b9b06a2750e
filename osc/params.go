package osc

import (
	"github.com/cwbudde/algo-osc/waveform"
)

// ModAlgo selects how a sub-oscillator's output folds into the primary
// signal.
type ModAlgo int

// Supported modulation algorithms.
const (
	PhaseModulation ModAlgo = iota
	AmplitudeModulation
	SignalMix
	SyncBySubOsc
	FrequencyModulation

	ModAlgoCount
)

var modAlgoNames = [ModAlgoCount]string{
	"PhaseModulation",
	"AmplitudeModulation",
	"SignalMix",
	"SyncBySubOsc",
	"FrequencyModulation",
}

// String returns the algorithm name, or "Unknown" for out-of-range values.
func (a ModAlgo) String() string {
	if a < 0 || a >= ModAlgoCount {
		return "Unknown"
	}

	return modAlgoNames[a]
}

// Valid reports whether a is one of the defined algorithms.
func (a ModAlgo) Valid() bool {
	return a >= 0 && a < ModAlgoCount
}

// ClampAlgo returns a limited to the defined algorithm range.
func ClampAlgo(a ModAlgo) ModAlgo {
	if a < 0 {
		return PhaseModulation
	}

	if a >= ModAlgoCount {
		return ModAlgoCount - 1
	}

	return a
}

// Params references the live scalar parameters an oscillator reads on every
// render call. The pointed-to values are owned and mutated by the host; the
// engine only reads them. A torn read of a value mid-update is accepted.
//
// Freq is required. Nil optional fields read as their neutral defaults:
// Sine shape, SignalMix algorithm, zero detune, zero phase offset, unit
// volume.
type Params struct {
	// Shape selects the wave shape.
	Shape *waveform.Shape

	// Algo selects the modulation algorithm used when a sub-oscillator is
	// attached.
	Algo *ModAlgo

	// Freq is the fundamental frequency in Hz.
	Freq *float64

	// Detune is a pitch offset in semitones.
	Detune *float64

	// Phase is an external phase offset in cycles, wrapped into [0, 1).
	Phase *float64

	// Volume is the linear output gain.
	Volume *float64
}

func (o *Oscillator) readShape() waveform.Shape {
	if o.params.Shape == nil {
		return waveform.Sine
	}

	return waveform.Clamp(*o.params.Shape)
}

func (o *Oscillator) readAlgo() ModAlgo {
	if o.params.Algo == nil {
		return SignalMix
	}

	return ClampAlgo(*o.params.Algo)
}

func (o *Oscillator) readFreq() float64 {
	return *o.params.Freq
}

func (o *Oscillator) readDetune() float64 {
	if o.params.Detune == nil {
		return 0
	}

	return *o.params.Detune
}

func (o *Oscillator) readExtPhase() float64 {
	if o.params.Phase == nil {
		return 0
	}

	return *o.params.Phase
}

func (o *Oscillator) readVolume() float64 {
	if o.params.Volume == nil {
		return 1
	}

	return *o.params.Volume
}
