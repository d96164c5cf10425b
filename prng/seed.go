package prng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/tifye/simlab/assert"
)

// Mix selects how an exercise base constant is combined with the epoch.
type Mix uint8

const (
	// MixAdd is base + epoch.
	MixAdd Mix = iota
	// MixXor is base ^ epoch.
	MixXor
	// MixXorShifted is base ^ (epoch << 1).
	MixXorShifted
	// MixAddShifted is base + (epoch << 1).
	MixAddShifted
)

func (m Mix) String() string {
	switch m {
	case MixAdd:
		return "add"
	case MixXor:
		return "xor"
	case MixXorShifted:
		return "xor-shifted"
	case MixAddShifted:
		return "add-shifted"
	default:
		return fmt.Sprintf("mix(%d)", uint8(m))
	}
}

// StreamSpec names one stream of an exercise and how its seeds are derived.
type StreamSpec struct {
	Name string
	Base uint32
	Mix  Mix
}

// Origin is the epoch-dependent part of the seed, before the run offset.
func (s StreamSpec) Origin(epoch uint32) uint32 {
	switch s.Mix {
	case MixXor:
		return s.Base ^ epoch
	case MixXorShifted:
		return s.Base ^ (epoch << 1)
	case MixAddShifted:
		return s.Base + (epoch << 1)
	default:
		return s.Base + epoch
	}
}

// Seed derives the seed of this stream for the given epoch and run index.
// All arithmetic wraps at 32 bits.
func (s StreamSpec) Seed(epoch uint32, run int) uint32 {
	return s.Origin(epoch) + uint32(run)
}

// Open creates the stream for the given epoch and run index.
func (s StreamSpec) Open(epoch uint32, run int) *Stream {
	assert.AssertNotEmpty(s.Name)
	return New(s.Seed(epoch, run))
}

// NewEpoch returns a fresh epoch from crypto/rand.
func NewEpoch() (uint32, error) {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random epoch: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
