// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// validators.go — parameter contracts shared by every coder.
//
// Each check returns the accepted value unchanged or a wrapped sentinel.
// They are pure and are called both by the constructors and by every
// Set* reconfiguration hook.

package coder

import "math"

// Duty bounds for pulse-type codes: duty ∈ (minDutyExclusive, MaxDuty].
const (
	minDutyExclusive = 0.0
	// MaxDuty is the largest accepted duty fraction (pulse spans the whole bit).
	MaxDuty = 1.0
)

// AmplitudeRule selects which amplitude contract a scheme enforces.
type AmplitudeRule int

const (
	// Closed schemes (NRZ-L, RZ, Manchester, MLT-3) require v > 0.
	Closed AmplitudeRule = iota
	// Open schemes (NRZ-I, AMI, HDB3) require v ≠ 0; the sign of v selects
	// the initial polarity.
	Open
)

// String describes the rule as a constraint on v.
func (r AmplitudeRule) String() string {
	if r == Open {
		return "v ≠ 0"
	}

	return "v > 0"
}

// Check validates v against the rule.
func (r AmplitudeRule) Check(v float64) (float64, error) {
	if r == Open {
		return CheckAmplitudeOpen(v)
	}

	return CheckAmplitudeClosed(v)
}

// CheckBitPeriod accepts tb when it is finite and strictly positive.
func CheckBitPeriod(tb float64) (float64, error) {
	if !isFinite(tb) || tb <= 0 {
		return 0, rejectf("CheckBitPeriod", ErrInvalidBitPeriod, tb)
	}

	return tb, nil
}

// CheckAmplitudeClosed accepts v when it is finite and strictly positive.
func CheckAmplitudeClosed(v float64) (float64, error) {
	if !isFinite(v) || v <= 0 {
		return 0, rejectf("CheckAmplitudeClosed", ErrBadAmplitude, v)
	}

	return v, nil
}

// CheckAmplitudeOpen accepts v when it is finite and non-zero.
// Negative values are meaningful: they flip the initial polarity.
func CheckAmplitudeOpen(v float64) (float64, error) {
	if !isFinite(v) || v == 0 {
		return 0, rejectf("CheckAmplitudeOpen", ErrBadAmplitude, v)
	}

	return v, nil
}

// CheckDuty accepts duty when it is finite and in (0, 1].
func CheckDuty(duty float64) (float64, error) {
	if !isFinite(duty) || duty <= minDutyExclusive || duty > MaxDuty {
		return 0, rejectf("CheckDuty", ErrWrongDuty, duty)
	}

	return duty, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
