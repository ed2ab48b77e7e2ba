package feed

import "math/rand"

// Rand is the source of the generator's uniform draws (the quote spread
// and the trading-book selection). It exists so runs are reproducible:
// production wires a seeded math/rand source, tests inject a stub.
type Rand interface {
	// Intn returns a uniform int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a math/rand-backed Rand seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
