package osc

import "math"

// Render writes frames samples into the given channel of buf, overwriting
// previous contents, and advances the oscillator's phase by frames steps.
//
// Parameter values are sampled once at call entry and treated as constant
// for the duration of the call. The per-sample path never allocates, never
// locks and never fails: degenerate arguments (non-positive frame count,
// short buffer, invalid channel) make the call a no-op, and an effective
// frequency at or above Nyquist clears the channel instead of aliasing.
func (o *Oscillator) Render(buf []Frame, frames, channel int) {
	if frames <= 0 || len(buf) < frames || channel < 0 || channel >= Channels {
		return
	}

	if o.readFreq() >= o.sampleRate/2 {
		for i := 0; i < frames; i++ {
			buf[i][channel] = 0
		}

		return
	}

	if o.sub == nil {
		o.renderPlain(buf, frames, channel)
		return
	}

	switch o.readAlgo() {
	case PhaseModulation:
		o.renderPM(buf, frames, channel)
	case AmplitudeModulation:
		o.renderAM(buf, frames, channel)
	case SignalMix:
		o.renderMix(buf, frames, channel)
	case SyncBySubOsc:
		o.renderSync(buf, frames, channel)
	case FrequencyModulation:
		o.renderFM(buf, frames, channel)
	default:
		o.renderPlain(buf, frames, channel)
	}
}

// renderPlain emits the primary shape directly, scaled by volume.
func (o *Oscillator) renderPlain(buf []Frame, frames, channel int) {
	o.recalcPhase()

	shape := o.readShape()
	freq := o.readFreq()
	vol := o.readVolume()
	coeff := o.coeff()

	for i := 0; i < frames; i++ {
		buf[i][channel] = o.sampleAt(shape, o.phase, freq) * vol
		o.phase += coeff
	}
}

// renderPM adds the sub-oscillator's sample to the primary's phase before
// sampling: a one-shot phase offset per frame.
func (o *Oscillator) renderPM(buf []Frame, frames, channel int) {
	o.sub.Render(buf, frames, channel)
	o.recalcPhase()

	shape := o.readShape()
	freq := o.readFreq()
	vol := o.readVolume()
	coeff := o.coeff()

	for i := 0; i < frames; i++ {
		buf[i][channel] = o.sampleAt(shape, o.phase+buf[i][channel], freq) * vol
		o.phase += coeff
	}
}

// renderAM multiplies the sub-oscillator's sample by the primary's,
// ring/tremolo style.
func (o *Oscillator) renderAM(buf []Frame, frames, channel int) {
	o.sub.Render(buf, frames, channel)
	o.recalcPhase()

	shape := o.readShape()
	freq := o.readFreq()
	vol := o.readVolume()
	coeff := o.coeff()

	for i := 0; i < frames; i++ {
		buf[i][channel] *= o.sampleAt(shape, o.phase, freq) * vol
		o.phase += coeff
	}
}

// renderMix sums the primary's sample onto the sub-oscillator's.
func (o *Oscillator) renderMix(buf []Frame, frames, channel int) {
	o.sub.Render(buf, frames, channel)
	o.recalcPhase()

	shape := o.readShape()
	freq := o.readFreq()
	vol := o.readVolume()
	coeff := o.coeff()

	for i := 0; i < frames; i++ {
		buf[i][channel] += o.sampleAt(shape, o.phase, freq) * vol
		o.phase += coeff
	}
}

// renderSync emits the sub-oscillator's waveform hard-synced to the
// primary's cycle: whenever the primary's phase wraps, the sub's phase is
// forced back to its phase offset. The primary supplies timing only and is
// never sampled; its volume acts as the voice output gain.
func (o *Oscillator) renderSync(buf []Frame, frames, channel int) {
	sub := o.sub

	o.recalcPhase()
	sub.recalcPhase()

	vol := o.readVolume()
	coeff := o.coeff()

	subShape := sub.readShape()
	subFreq := sub.readFreq()

	subCoeff := sub.coeff()
	if subCoeff < 0 {
		// A non-positive sub frequency cannot produce an audible synced
		// cycle; freeze the sub instead of running its phase backwards.
		subCoeff = 0
	}

	for i := 0; i < frames; i++ {
		prev := o.phase
		o.phase += coeff

		if math.Floor(o.phase) > math.Floor(prev) {
			sub.phase = sub.phaseOffset
		}

		buf[i][channel] = sub.sampleAt(subShape, sub.phase, subFreq) * vol
		sub.phase += subCoeff
	}
}

// renderFM perturbs the primary's phase velocity by the sub-oscillator's
// sample each frame. Unlike phase modulation the perturbation integrates
// into the running phase, so it composes across re-entrant sub chains.
func (o *Oscillator) renderFM(buf []Frame, frames, channel int) {
	o.sub.Render(buf, frames, channel)
	o.recalcPhase()

	shape := o.readShape()
	freq := o.readFreq()
	vol := o.readVolume()
	coeff := o.coeff()

	// Modulation index referenced to 44100 Hz so FM depth does not change
	// with the host's sample rate.
	corr := baseSampleRate / o.sampleRate

	for i := 0; i < frames; i++ {
		o.phase += buf[i][channel] * corr * coeff
		buf[i][channel] = o.sampleAt(shape, o.phase, freq) * vol
		o.phase += coeff
	}
}
