package game

import (
	"golang.org/x/exp/rand"

	"war/meta"
)

// Source is the randomness used for dice and mission draws.
type Source interface {
	// Intn returns a non-negative int in [0, n).
	Intn(n int) int
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func rollDie(rng Source) int {
	return rng.Intn(meta.DIE_FACES) + 1
}
