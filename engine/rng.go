package engine

import "math/rand"

// Rand is the random source the engine draws from. Every game-affecting
// roll goes through it so tests can script outcomes.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// RNG wraps math/rand.Rand with position tracking.
// Position increments with every draw.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

func roll(r Rand, sides int) int {
	return r.Intn(sides) + 1
}

func weightedSelect(r Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := r.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if n < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// pick returns one of options at random.
func pick(r Rand, options []string) string {
	return options[r.Intn(len(options))]
}
