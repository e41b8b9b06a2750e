// Package fastrand implements the small linear congruential generator used
// for the white-noise wave shape. Statistical quality is irrelevant on that
// path; only speed matters, so this intentionally stays far cheaper than
// math/rand. Not safe for concurrent use: each voice owns its own state.
package fastrand

// Max is the largest value returned by Uint32.
const Max = 0x7fff

// Source is a 15-bit LCG. The zero value is a valid, deterministic source.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Seed resets the generator state.
func (s *Source) Seed(seed uint32) {
	s.state = seed
}

// Uint32 returns the next value in [0, Max].
func (s *Source) Uint32() uint32 {
	s.state = s.state*1103515245 + 12345
	return (s.state >> 16) & Max
}

// Float64 returns the next value in [0, 1].
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / Max
}

// Bipolar returns the next value in [-1, 1].
func (s *Source) Bipolar() float64 {
	return 1 - float64(s.Uint32())*2/Max
}
