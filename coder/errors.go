// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// errors.go — sentinel errors for the coder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Validation failures are wrapped with the method name and the rejected
//     value via %w, so the sentinel survives and the message stays useful.
//   • Encode never fails. Every error here is raised at construction or
//     reconfiguration time.

package coder

import (
	"errors"
	"fmt"
)

// ErrInvalidBitPeriod indicates a bit period that is non-finite or ≤ 0.
var ErrInvalidBitPeriod = errors.New("coder: bit period must be finite and > 0")

// ErrBadAmplitude indicates an amplitude that is non-finite, zero where a
// non-zero value is required, or non-positive where a strictly positive
// value is required.
var ErrBadAmplitude = errors.New("coder: invalid amplitude")

// ErrWrongDuty indicates a duty fraction that is non-finite or outside (0, 1].
var ErrWrongDuty = errors.New("coder: duty must be finite and in (0, 1]")

// ErrUnknownCoder indicates a Scheme (or scheme name) no coder implements.
var ErrUnknownCoder = errors.New("coder: unknown line coding scheme")

// rejectf wraps sentinel with the method context and the rejected value:
// "<method>: <sentinel>: got <value>".
func rejectf(method string, sentinel error, got float64) error {
	return fmt.Errorf("%s: %w: got %v", method, sentinel, got)
}
