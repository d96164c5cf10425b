// Package sample turns uniform draws into the variates used by the exercises.
//
// Every sampler that takes a Source consumes exactly one draw per call, except
// EggFate which takes a second draw only when the egg hatches. The pure
// mapping functions (DieFace, Poisson1, ...) take the uniform value directly
// so callers that need to record the draw can do so.
package sample

import (
	"math"

	"github.com/tifye/simlab/assert"
)

// Source is a stream of uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// DieFace maps u to round(1 + 5u) clamped to [1, 6]. Faces 1 and 6 are half
// as likely as the others; the exercises depend on this exact mapping.
func DieFace(u float64) int {
	// float64() keeps the product from being fused into an FMA.
	face := int(math.Round(1 + float64(5*u)))
	return min(6, max(1, face))
}

func Die(src Source) int {
	return DieFace(src.Float64())
}

type bucket struct {
	bound float64
	value int
}

// Discretized Poisson(1) used by the farm exercise.
var poisson1 = [...]bucket{
	{0.37, 0},
	{0.74, 1},
	{0.92, 2},
	{0.98, 3},
	{1.00, 4},
}

// Poisson1 returns the first bucket whose cumulative bound exceeds u.
func Poisson1(u float64) int {
	for _, b := range poisson1 {
		if u < b.bound {
			return b.value
		}
	}
	return 4
}

func Poisson1From(src Source) int {
	return Poisson1(src.Float64())
}

// Exponential is the inverse-CDF transform -mean * ln(1 - u).
func Exponential(u, mean float64) float64 {
	return -mean * math.Log(1-u)
}

func ExponentialFrom(src Source, mean float64) float64 {
	return Exponential(src.Float64(), mean)
}

// Items bought by one customer: 0 (0.2), 1 (0.3), 2 (0.4), 3 (0.1).
// Bounds are inclusive.
var itemsPerCustomer = [...]bucket{
	{0.2, 0},
	{0.5, 1},
	{0.9, 2},
}

func ItemCount(u float64) int {
	for _, b := range itemsPerCustomer {
		if u <= b.bound {
			return b.value
		}
	}
	return 3
}

func ItemCountFrom(src Source) int {
	return ItemCount(src.Float64())
}

// UniformInt maps u onto the integers a..b inclusive.
func UniformInt(u float64, a, b int) int {
	assert.Assert(a <= b, "empty integer range")
	return a + int(math.Floor(u*float64(b-a+1)))
}

func UniformIntFrom(src Source, a, b int) int {
	return UniformInt(src.Float64(), a, b)
}
