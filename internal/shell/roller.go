package shell

import "math/rand/v2"

// Roller is the source of randomness for game outcomes.
// *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}

// NewRoller returns a deterministic Roller for the given seed.
func NewRoller(seed uint64) Roller {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalRoller struct{}

func (globalRoller) Float64() float64 { return rand.Float64() }

func (globalRoller) IntN(n int) int { return rand.IntN(n) }

// between returns a number in [lo, hi].
func between(r Roller, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
