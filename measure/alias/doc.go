// Package alias measures aliasing energy in rendered audio: the fraction of
// spectral energy above a cutoff frequency. It exists to verify the
// band-limiting guarantees of the wavetable oscillator but is usable as a
// general diagnostic.
package alias
