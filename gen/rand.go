// Package gen provides the sampler core for property-based testing:
// seeded random draws, immutable value sources, and the combinators
// used to compose them.
//
// A Source describes how to draw random values of some type and how to
// shrink a drawn value toward a simpler one once a failing input has
// been found. Sources are immutable value objects: the same Source can
// be drawn from any number of times, including concurrently, as long
// as each goroutine uses its own Rand.
//
// Basic usage:
//
//	src := gen.Int64Range(1, 100)
//	r := gen.NewRand(0)
//	n := src.Next(r) // uniform in [1, 100]
package gen

import (
	"math/rand"
	"time"
)

// Rand wraps a seeded random number generator. The seed is retained so
// it can be logged on test failure and the run reproduced.
//
// A Rand is not safe for concurrent use; give each worker its own.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// NewRand creates a Rand with the given seed.
// If seed is 0, uses the current time as the seed.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this Rand was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Int63n returns a random int64 in [0, n).
// Panics if n <= 0.
func (r *Rand) Int63n(n int64) int64 {
	return r.rng.Int63n(n)
}

// Uint64 returns a random 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.rng.Uint64()
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}
