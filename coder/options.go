// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// options.go — functional options for the New factory.
//
// Contract:
//   • Options only record raw values; New validates them so a bad value
//     surfaces as ErrInvalidBitPeriod / ErrBadAmplitude / ErrWrongDuty
//     instead of a panic (user input flows through here).
//   • Later options override earlier ones.

package coder

// Option customizes the parameters New resolves before construction.
type Option func(*config)

// config aggregates the raw parameter values for New.
type config struct {
	bitPeriod float64
	amplitude float64
	duty      float64
}

// newConfig starts from the package defaults and applies opts in order.
// Nil options are skipped.
func newConfig(opts ...Option) config {
	cfg := config{
		bitPeriod: DefaultBitPeriod,
		amplitude: DefaultAmplitude,
		duty:      DefaultDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBitPeriod sets the bit period tb.
func WithBitPeriod(tb float64) Option {
	return func(c *config) { c.bitPeriod = tb }
}

// WithAmplitude sets the amplitude v. Its sign matters for open schemes.
func WithAmplitude(v float64) Option {
	return func(c *config) { c.amplitude = v }
}

// WithDuty sets the RZ pulse fraction. Ignored by other schemes.
func WithDuty(duty float64) Option {
	return func(c *config) { c.duty = duty }
}
