// Package pattern provides deterministic bit-pattern generators for
// fixtures, demos and the command-line encoder.
//
// The package offers the following key components:
//
//   - Fixed patterns:
//     – Alternating:  1010… (maximum transition density).
//     – Constant:     a single repeated bit; Ones and Zeros are shorthands.
//     – Repeat:       a user word tiled to length n.
//   - Pseudo-random binary sequences:
//     – PRBS:         maximal-length LFSR sequences of order 7, 9 or 15.
//     – Random:       independent draws with a tunable density of ones.
//   - Configuration primitives:
//     – Option:       a function that mutates config before use.
//     – WithSeed, WithRand, WithDensity.
//   - Name-driven dispatch:
//     – Named / Names for CLI flags ("alt", "prbs9", "random", …).
//
// Guarantees:
//
//   - Determinism: the same (name, n, options) always yields the same bits.
//     Random draws only come from the RNG selected by WithSeed/WithRand.
//   - No panics on bad sizes or densities: generators return nil plus a
//     wrapped sentinel (ErrBadLength, ErrBadDensity, …). Only WithRand(nil)
//     panics, to surface a programmer error early.
//   - O(n) time and memory per call.
package pattern
