// Package core provides shared numeric helpers and configuration types
// used by the wavetable builder and the oscillator engine.
package core
