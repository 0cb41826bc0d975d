// Package rng provides the seeded pseudo-random stream that drives all map
// generation. Every algorithm draws exclusively from a Stream so that a seed
// fully determines the generated grid.
package rng

const (
	// Linear-congruential recurrence constants. These are part of the wire
	// compatibility contract: changing them changes every seed's output.
	// The seed normalization in New, including the non-positive state bump,
	// is pinned the same way.
	multiplier = 185852
	modulus    = int64(1)<<35 - 31
)

// Stream is a deterministic pseudo-random number generator. Two streams
// constructed with the same seed produce identical sequences. A Stream is
// owned by exactly one generation run; sharing one across concurrent runs
// makes draw order, and therefore the output grid, undefined.
type Stream struct {
	state int64
}

// New creates a stream from a non-negative integer seed.
// Seeds that reduce to a zero state would collapse the recurrence to a
// constant, so the state is bumped into the valid range instead.
func New(seed int64) *Stream {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &Stream{state: s}
}

// Next advances the stream and returns a value in [0, 1).
func (s *Stream) Next() float64 {
	s.state = s.state * multiplier % modulus
	return float64(s.state) / float64(modulus)
}

// Intn returns an integer in [0, n). Non-positive n returns 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Range returns an integer in [min, max] inclusive.
// If max <= min it returns min without consuming a draw.
func (s *Stream) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Chance consumes one draw and reports whether it landed under p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}
