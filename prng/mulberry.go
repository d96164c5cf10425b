// Package prng holds the seeded uniform source shared by every exercise.
//
// The generator is Mulberry32: a 32-bit counter advanced by a fixed odd
// increment and finalized with two xorshift-multiply rounds. It is fast and
// fully reproducible across languages, which is all the exercises need. It
// is not meant to pass rigorous statistical batteries.
package prng

const (
	increment = 0x6D2B79F5
	twoTo32   = 4294967296.0
)

// Stream is one independent sequence of uniform draws. A Stream is owned by
// exactly one consumer and must not be shared between runs.
type Stream struct {
	seed  uint32
	state uint32
	draws int
}

func New(seed uint32) *Stream {
	return &Stream{seed: seed, state: seed}
}

// Float64 returns the next uniform value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state += increment
	t := s.state
	r := (t ^ (t >> 15)) * (t | 1)
	r ^= r + (r^(r>>7))*(r|61)
	s.draws++
	return float64(r^(r>>14)) / twoTo32
}

// Seed reports the seed the stream was created with.
func (s *Stream) Seed() uint32 {
	return s.seed
}

// Draws reports how many values have been drawn so far.
func (s *Stream) Draws() int {
	return s.draws
}

// Reset rewinds the stream to its initial seed.
func (s *Stream) Reset() {
	s.state = s.seed
	s.draws = 0
}
