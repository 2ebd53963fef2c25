// SPDX-License-Identifier: MIT
// Package: linecode/pattern
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (a local source seeded with DefaultSeed is used)
//   • density = 0.5

package pattern

import "math/rand"

// DefaultSeed seeds Random when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

const (
	minLength      = 1   // shortest pattern a generator returns
	defaultDensity = 0.5 // fair coin
)

// config aggregates the knobs used by the generators.
type config struct {
	// RNG for Random; nil means "seed a local one with DefaultSeed".
	rng *rand.Rand
	// Probability of a 1 in Random.
	density float64
}

func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
