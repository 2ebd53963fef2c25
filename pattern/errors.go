// SPDX-License-Identifier: MIT
// Package: linecode/pattern
//
// errors.go — sentinel errors for the pattern package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with patternErrorf, which keeps the
//     sentinel reachable through %w.

package pattern

import (
	"errors"
	"fmt"
)

// ErrBadLength indicates a requested length n < 1.
var ErrBadLength = errors.New("pattern: length must be ≥ 1")

// ErrUnsupportedOrder indicates a PRBS order with no tap table entry.
var ErrUnsupportedOrder = errors.New("pattern: unsupported PRBS order")

// ErrBadDensity indicates a density of ones outside [0, 1] or non-finite.
var ErrBadDensity = errors.New("pattern: density must be in [0, 1]")

// ErrEmptyWord indicates that Repeat received nothing to repeat.
var ErrEmptyWord = errors.New("pattern: word must not be empty")

// ErrUnknownPattern indicates a name Named cannot resolve.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// patternErrorf wraps sentinel as "<method>: <formatted detail>: <sentinel>".
func patternErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// checkLength is shared by every generator.
func checkLength(method string, n int) error {
	if n < minLength {
		return patternErrorf(method, ErrBadLength, "n=%d", n)
	}

	return nil
}
