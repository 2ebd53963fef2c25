// SPDX-License-Identifier: MIT
// Package: linecode/pattern
//
// options.go — functional options for the stochastic generators.
//
// Contract:
//   • WithRand panics on nil (programmer error).
//   • WithDensity only records its value; Random validates it so that user
//     input surfaces as ErrBadDensity rather than a panic.
//   • Later options override earlier ones.

package pattern

import "math/rand"

// Option customizes a generator by mutating config before it runs.
type Option func(*config)

// WithRand provides an explicit RNG, shared across calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pattern: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability of a 1 for Random.
func WithDensity(p float64) Option {
	return func(c *config) {
		c.density = p
	}
}
