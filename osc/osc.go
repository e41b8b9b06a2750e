package osc

import (
	"fmt"

	"github.com/cwbudde/algo-osc/core"
	"github.com/cwbudde/algo-osc/internal/fastrand"
	"github.com/cwbudde/algo-osc/waveform"
	"github.com/cwbudde/algo-osc/wavetable"
)

// baseSampleRate is the reference rate the band tables and the FM depth
// correction are calibrated to.
const baseSampleRate = 44100.0

// Frame is one interleaved stereo sample frame.
type Frame [2]float64

// Channel indices into a [Frame].
const (
	ChannelLeft  = 0
	ChannelRight = 1

	Channels = 2
)

// Oscillator is a per-voice oscillator instance. It holds phase state,
// references to live host-owned parameters, and optionally owns a
// sub-oscillator that modulates it.
//
// An Oscillator is not safe for concurrent use; each voice owns one and
// renders it from a single audio thread.
type Oscillator struct {
	params     Params
	sampleRate float64

	tables     *wavetable.Set
	userTables *wavetable.UserSet
	userWave   UserWave
	useTables  bool

	sub *Oscillator

	phase       float64
	phaseOffset float64

	noise fastrand.Source
}

// Option configures an Oscillator at construction.
type Option func(*Oscillator)

// WithSampleRate sets the output sample rate. Default 44100.
func WithSampleRate(sampleRate float64) Option {
	return func(o *Oscillator) {
		if sampleRate > 0 {
			o.sampleRate = sampleRate
		}
	}
}

// WithSub attaches a sub-oscillator. The oscillator takes exclusive
// ownership: the sub must not be rendered independently.
func WithSub(sub *Oscillator) Option {
	return func(o *Oscillator) {
		o.sub = sub
	}
}

// WithTables overrides the shared band-limited table set.
func WithTables(set *wavetable.Set) Option {
	return func(o *Oscillator) {
		o.tables = set
	}
}

// WithUserWave attaches a borrowed user waveform for the UserDefined shape.
func WithUserWave(w UserWave) Option {
	return func(o *Oscillator) {
		o.userWave = w
	}
}

// WithUserTables attaches anti-aliased user-wave tables. When present they
// take precedence over the plain user waveform on the UserDefined path.
func WithUserTables(u *wavetable.UserSet) Option {
	return func(o *Oscillator) {
		o.userTables = u
	}
}

// WithNoiseSeed seeds the white-noise generator. The default seed is 0,
// which is deterministic like any other.
func WithNoiseSeed(seed uint32) Option {
	return func(o *Oscillator) {
		o.noise.Seed(seed)
	}
}

// New creates an oscillator reading the given live parameters.
//
// Unless WithTables is supplied, the process-wide shared table set is used,
// building it on first construction; a table build failure is returned here,
// before the voice can ever render.
func New(p Params, opts ...Option) (*Oscillator, error) {
	if p.Freq == nil {
		return nil, fmt.Errorf("osc: params must reference a frequency")
	}

	o := &Oscillator{
		params:     p,
		sampleRate: baseSampleRate,
		useTables:  true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.tables == nil {
		set, err := wavetable.Shared(core.WithSampleRate(o.sampleRate))
		if err != nil {
			return nil, fmt.Errorf("osc: shared wavetables: %w", err)
		}

		o.tables = set
	}

	o.phaseOffset = core.AbsFraction(o.readExtPhase())
	o.phase = o.phaseOffset

	return o, nil
}

// SampleRate returns the oscillator's output sample rate.
func (o *Oscillator) SampleRate() float64 {
	return o.sampleRate
}

// Sub returns the owned sub-oscillator, or nil.
func (o *Oscillator) Sub() *Oscillator {
	return o.sub
}

// Phase returns the current normalized phase.
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// SetPhase sets the phase, wrapped into [0, 1).
//
// Rendering one channel advances phase by the rendered frame count, so a
// second channel rendered from the same instance starts where the first
// ended. Hosts that want both channels from the same starting position must
// snapshot and restore the phase around the first call, or SetPhase before
// the second.
func (o *Oscillator) SetPhase(ph float64) {
	o.phase = core.AbsFraction(ph)
}

// ResetPhase returns the phase to the cached external phase offset.
func (o *Oscillator) ResetPhase() {
	o.phase = o.phaseOffset
}

// SetUseTables toggles band-limited table lookup for the band-limitable
// shapes. When disabled those shapes render their analytic full-bandwidth
// form, which aliases at high frequencies.
func (o *Oscillator) SetUseTables(use bool) {
	o.useTables = use
}

// SetUserWave replaces the borrowed user waveform.
func (o *Oscillator) SetUserWave(w UserWave) {
	o.userWave = w
}

// SetUserTables replaces the anti-aliased user-wave tables.
func (o *Oscillator) SetUserTables(u *wavetable.UserSet) {
	o.userTables = u
}

// coeff returns the per-sample phase increment for the current parameter
// values.
func (o *Oscillator) coeff() float64 {
	return o.readFreq() * detuneFactor(o.readDetune()) / o.sampleRate
}

// recalcPhase folds a changed external phase offset into the running phase
// and wraps it into [0, 1).
func (o *Oscillator) recalcPhase() {
	ext := core.AbsFraction(o.readExtPhase())
	if o.phaseOffset != ext {
		o.phase += ext - o.phaseOffset
		o.phaseOffset = ext
	}

	o.phase = core.AbsFraction(o.phase)
}

// sampleAt evaluates the selected shape at phase ph. freq drives band
// selection for table-backed shapes; it is the per-call frequency snapshot,
// not the instantaneous modulated frequency.
func (o *Oscillator) sampleAt(shape waveform.Shape, ph, freq float64) float64 {
	switch {
	case shape == waveform.Sine:
		return waveform.SineSample(ph)
	case shape == waveform.WhiteNoise:
		return o.noise.Bipolar()
	case shape == waveform.UserDefined:
		if o.useTables && o.userTables != nil {
			return o.userTables.Sample(freq, ph)
		}

		if o.userWave != nil {
			return o.userWave.Sample(core.AbsFraction(ph))
		}

		return 0
	case shape.BandLimited():
		if o.useTables && o.tables != nil {
			return o.tables.Sample(shape, freq, ph)
		}

		return waveform.Sample(shape, ph)
	default:
		return 0
	}
}

// detuneFactor converts a semitone offset to a frequency multiplier.
func detuneFactor(semitones float64) float64 {
	if semitones == 0 {
		return 1
	}

	return pow2(semitones / 12)
}
