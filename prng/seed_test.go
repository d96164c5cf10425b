package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSpecSeed(t *testing.T) {
	die1 := StreamSpec{Name: "die1", Base: 1234, Mix: MixAdd}
	die2 := StreamSpec{Name: "die2", Base: 9876, Mix: MixXorShifted}

	tests := []struct {
		name     string
		spec     StreamSpec
		epoch    uint32
		run      int
		expected uint32
	}{
		{"add", die1, 123456789, 0, 123458023},
		{"add with run", die1, 123456789, 2, 123458025},
		{"add wraps", die1, 4000000000, 0, 4000001234},
		{"xor shifted", die2, 123456789, 0, 246922430},
		{"xor shifted with run", die2, 123456789, 1, 246922431},
		{"xor shifted wraps", die2, 4000000000, 0, 3705042580},
		{"xor", StreamSpec{Base: 0xff00ff00, Mix: MixXor}, 0x0f0f0f0f, 0, 0xf00ff00f},
		{"add shifted", StreamSpec{Base: 10, Mix: MixAddShifted}, 5, 3, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.Seed(tt.epoch, tt.run))
		})
	}
}

func TestStreamSpecOpen(t *testing.T) {
	spec := StreamSpec{Name: "die1", Base: 1234, Mix: MixAdd}
	s := spec.Open(0, 0)
	assert.Equal(t, uint32(1234), s.Seed())
	assert.Equal(t, 0.07329497812315822, s.Float64())
}

func TestEpochChangesEverySeed(t *testing.T) {
	specs := []StreamSpec{
		{Base: 1234, Mix: MixAdd},
		{Base: 9876, Mix: MixXorShifted},
		{Base: 0x51a2b3c4, Mix: MixXor},
		{Base: 0x9fedcba1, Mix: MixAddShifted},
	}
	for _, spec := range specs {
		for run := range 30 {
			assert.NotEqual(t, spec.Seed(1, run), spec.Seed(2, run), spec.Mix.String())
		}
	}
}

func TestNewEpoch(t *testing.T) {
	seen := map[uint32]struct{}{}
	for range 8 {
		e, err := NewEpoch()
		require.NoError(t, err)
		seen[e] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
