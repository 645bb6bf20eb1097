package app

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the source of randomness for quote selection.
// IntN returns a value in [0, n) and must be safe for concurrent use.
type Random interface {
	IntN(n int) int
}

// LockedRand is a seedable PCG generator guarded by a mutex.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand returns a generator seeded with seed. A zero seed is replaced
// by the current time.
func NewLockedRand(seed uint64) *LockedRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &LockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN implements Random.
func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(n)
}
