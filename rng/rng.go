// Package rng provides the deterministic random source shared by the
// genetics engine and the reproduction manager. A single top-level seed
// governs an entire run; replaying the same seed and tick sequence
// reproduces every draw bit-for-bit.
package rng

import "math/rand"

// Source is a seeded random source. It is not safe for concurrent use;
// the simulation is single-threaded by design.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a source from a seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was last (re)initialized with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Reseed resets the source so the draw sequence restarts from seed.
func (s *Source) Reseed(seed int64) {
	s.seed = seed
	s.r = rand.New(rand.NewSource(seed))
}

// Float64 draws uniformly from [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Range draws uniformly from [lo,hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Gauss draws from a normal distribution with the given mean and sigma.
func (s *Source) Gauss(mean, sigma float64) float64 {
	return mean + s.r.NormFloat64()*sigma
}

// IntN draws uniformly from [0,n).
func (s *Source) IntN(n int) int {
	return s.r.Intn(n)
}
