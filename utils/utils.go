// File: utils/utils.go
package utils

import (
	"math"
	"math/rand/v2"
)

// RoundHalfUp rounds down when the fractional part is below .5, up otherwise.
func RoundHalfUp(x float64) int {
	floor := math.Floor(x)
	if x-floor < 0.5 {
		return int(floor)
	}
	return int(floor) + 1
}

func Clamp(x, low, high int) int {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// Random is the only source of randomness the simulation consumes.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// RandomSource hands out the generator used for one tick. Deriving it from the
// tick number keeps every State reproducible without storing mutable state.
type RandomSource func(tick uint64) Random

// NewRandom returns a PCG generator for a seed and stream.
func NewRandom(seed, stream uint64) Random {
	return rand.New(rand.NewPCG(seed, stream))
}

// SeededSource derives one PCG stream per tick from seed.
func SeededSource(seed uint64) RandomSource {
	return func(tick uint64) Random {
		return NewRandom(seed, tick)
	}
}

// FixedRandom replays the same values forever. Tests use it to pin outcomes.
type FixedRandom struct {
	Float float64
	Int   int
}

func (f FixedRandom) Float64() float64 { return f.Float }

func (f FixedRandom) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	return Clamp(f.Int, 0, n-1)
}

func FixedSource(r FixedRandom) RandomSource {
	return func(uint64) Random { return r }
}
