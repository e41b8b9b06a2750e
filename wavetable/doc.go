// Package wavetable builds and serves the band-limited single-cycle tables
// behind the oscillator engine.
//
// Each band-limitable wave shape owns BandCount tables of Length samples,
// one per semitone-derived frequency band. A table contains no partial above
// Nyquist for its band's representative frequency, so lookup through
// [Set.Sample] is alias-free as long as band selection follows the playing
// frequency.
//
// Construction is the offline half of the engine: [Build] transforms and
// allocates freely, while everything reachable from a built [Set] or
// [UserSet] is read-only and safe on the audio thread. [Shared] provides the
// process-wide lazily built instance.
package wavetable
