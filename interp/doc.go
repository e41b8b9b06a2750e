// Package interp provides fractional interpolation primitives used by
// wavetable lookup and user-waveform resampling.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:          2-point linear interpolation
//   - [Hermite4]:         4-point cubic Hermite
//   - [PeriodicHermite4]: Hermite4 over a single-cycle table with wraparound
package interp
