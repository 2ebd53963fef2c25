// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// types.go — the LineCoder capability shared by every scheme.

package coder

import (
	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// Compile-time defaults for every coder parameter.
const (
	// DefaultBitPeriod is the bit period tb used when none is given.
	DefaultBitPeriod = 1.0
	// DefaultAmplitude is the amplitude v used when none is given.
	DefaultAmplitude = 1.0
	// DefaultDuty is the RZ pulse fraction used when none is given.
	DefaultDuty = 0.5
)

// LineCoder converts a bit sequence into a waveform.
//
// Encode is pure and deterministic: it never fails, keeps no state between
// calls and returns segments ordered by Start, contiguous from time 0.
// Empty input yields no segments.
//
// The Set* hooks validate their argument exactly like construction does and
// leave the coder unchanged on failure. Implementations are not safe for
// concurrent reconfiguration; callers serialize access.
type LineCoder interface {
	// Scheme identifies the coding scheme.
	Scheme() Scheme
	// Encode lays out bs as constant-level segments.
	Encode(bs []bits.Bit) []signal.Segment
	// BitPeriod returns the current bit period tb.
	BitPeriod() float64
	// Amplitude returns the current amplitude v.
	Amplitude() float64
	// SetBitPeriod replaces tb; ErrInvalidBitPeriod on failure.
	SetBitPeriod(tb float64) error
	// SetAmplitude replaces v; ErrBadAmplitude on failure.
	SetAmplitude(v float64) error
}

// DutyCoder is a LineCoder whose pulse fraction can be reconfigured (RZ).
type DutyCoder interface {
	LineCoder
	// Duty returns the current pulse fraction.
	Duty() float64
	// SetDuty replaces the pulse fraction; ErrWrongDuty on failure.
	SetDuty(duty float64) error
}
