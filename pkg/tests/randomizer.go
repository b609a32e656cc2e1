package tests

import (
	"math/rand/v2"
	"sync"
)

// Randomizer replays fixed sequences so tests can force a specific branch of
// every random choice. Sequences wrap around when exhausted; an empty Float64
// sequence yields 0 and an empty IntN sequence yields 0.
type Randomizer struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi     int
	ii     int
}

func NewRandomizer(floats ...float64) *Randomizer {
	return &Randomizer{floats: floats}
}

func (r *Randomizer) WithInts(ints ...int) *Randomizer {
	r.ints = ints

	return r
}

func (r *Randomizer) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.floats) == 0 {
		return 0
	}

	v := r.floats[r.fi%len(r.floats)]
	r.fi++

	return v
}

func (r *Randomizer) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ints) == 0 || n <= 0 {
		return 0
	}

	v := r.ints[r.ii%len(r.ints)]
	r.ii++

	return v % n
}

// NewSeeded is a real PRNG with a fixed seed for statistical tests.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // for tests
}
