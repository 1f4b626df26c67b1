package engine

import (
	"math/rand"
	"time"
)

// Rand is the only source of randomness in the engine. Every draw is
// sequential, so a seeded Rand replays a run exactly.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded generator. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randint returns a value in [lo, hi], both inclusive.
func randint(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// damageRange returns the ±10% spread around base, floored.
func damageRange(base int) (int, int) {
	return base * 9 / 10, base * 11 / 10
}
