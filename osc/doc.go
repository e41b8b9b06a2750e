// Package osc implements the per-voice oscillator engine: a band-limited,
// multi-algorithm oscillator rendering into caller-owned interleaved stereo
// frame buffers.
//
// A voice constructs one [Oscillator] per note, pointing it at host-owned
// parameter scalars through [Params]. Each [Oscillator.Render] call reads
// the parameters once, advances phase by the rendered frame count and
// writes one channel. Band-limited shapes are served from the shared
// wavetable set; sine and white noise are computed directly; user-defined
// shapes delegate to a borrowed host waveform.
//
// A sub-oscillator attached with [WithSub] is combined with the primary
// according to the selected [ModAlgo]: phase modulation, amplitude
// modulation, mixing, hard sync or frequency modulation. Sub-oscillators
// nest recursively and are owned exclusively by their parent.
//
// The render path is real-time safe: after construction it never
// allocates, locks, blocks or fails.
package osc
