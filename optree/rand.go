package optree

import (
	"math/rand/v2"
)

// Rand is a source of random integers used by dice rolls.
// *rand.Rand from math/rand/v2 implements this interface.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n), n > 0.
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRand returns process-wide random source, safe for concurrent use.
func DefaultRand() Rand {
	return defaultRand{}
}

// NewRand returns deterministic random source for given seed.
// Returned source is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
