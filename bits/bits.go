// SPDX-License-Identifier: MIT

// Package bits converts between user-typed bit strings and the binary
// sequences consumed by the line coders.
//
// Only the characters '0' and '1' are accepted. Anything else, including an
// empty string, is rejected rather than silently truncated:
//
//	bs, err := bits.Parse("10000")
//	if errors.Is(err, bits.ErrInvalidDigit) {
//		// report the offending character
//	}
package bits

import (
	"errors"
	"fmt"
	"strings"
)

// Bit is a single binary digit. Only Zero and One are valid values.
type Bit uint8

const (
	// Zero is the binary digit 0 (a "space").
	Zero Bit = 0
	// One is the binary digit 1 (a "mark").
	One Bit = 1
)

var (
	// ErrEmptyInput indicates that Parse received no digits at all.
	ErrEmptyInput = errors.New("bits: input must contain at least one digit")

	// ErrInvalidDigit indicates a character other than '0' or '1'.
	ErrInvalidDigit = errors.New("bits: only '0' and '1' are allowed")
)

// String renders the bit as "0" or "1".
func (b Bit) String() string {
	if b == One {
		return "1"
	}

	return "0"
}

// Parse converts s into a bit sequence.
//
// Errors:
//   - ErrEmptyInput   — s is empty.
//   - ErrInvalidDigit — s contains a rune other than '0'/'1'; the wrapped
//     message names the rune and its byte offset.
//
// Complexity: O(len(s)) time and memory.
func Parse(s string) ([]Bit, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	out := make([]Bit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, Zero)
		case '1':
			out = append(out, One)
		default:
			return nil, fmt.Errorf("Parse: %q at offset %d: %w", r, i, ErrInvalidDigit)
		}
	}

	return out, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(s string) []Bit {
	bs, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return bs
}

// Format renders bs back into its '0'/'1' string form.
// Any non-zero value is rendered as '1'.
func Format(bs []Bit) string {
	var b strings.Builder
	b.Grow(len(bs))
	for _, bit := range bs {
		if bit == Zero {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}

	return b.String()
}

// Count returns the number of ones (marks) and zeros (spaces) in bs.
func Count(bs []Bit) (ones, zeros int) {
	for _, bit := range bs {
		if bit == Zero {
			zeros++
		} else {
			ones++
		}
	}

	return ones, zeros
}

// LongestZeroRun returns the length of the longest run of consecutive zeros.
// Useful to judge how many transitions a transition-less code will lose.
func LongestZeroRun(bs []Bit) int {
	var run, best int
	for _, bit := range bs {
		if bit != Zero {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}

	return best
}
