// Package waveform defines the wave shape enumeration and the analytic,
// full-bandwidth sample functions for each shape. The analytic forms serve
// two roles: they are the render-time path for shapes that never alias, and
// they are the reference cycles the wavetable builder band-limits.
package waveform
