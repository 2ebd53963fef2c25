// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
	"go.uber.org/zap"
)

// RZ is polar Return-to-Zero. Each bit period splits into a pulse of width
// duty·tb at +v (bit 1) or -v (bit 0), followed by level 0 for the rest of
// the period. With duty = 1 the zero span is degenerate and omitted.
type RZ struct {
	params
	duty float64
}

// NewRZ validates tb, v (v > 0) and duty (0 < duty ≤ 1) and returns an RZ coder.
func NewRZ(tb, v, duty float64) (*RZ, error) {
	p, err := newParams(SchemeRZ, Closed, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewRZ: %w", err)
	}
	duty, err = CheckDuty(duty)
	if err != nil {
		return nil, fmt.Errorf("NewRZ: %w", err)
	}

	return &RZ{params: p, duty: duty}, nil
}

// Duty returns the pulse fraction.
func (c *RZ) Duty() float64 { return c.duty }

// SetDuty replaces the pulse fraction, keeping the old one on failure.
func (c *RZ) SetDuty(duty float64) error {
	duty, err := CheckDuty(duty)
	if err != nil {
		Logger().Debug("duty rejected", zap.Stringer("scheme", c.scheme), zap.Error(err))
		return fmt.Errorf("rz.SetDuty: %w", err)
	}
	c.duty = duty

	return nil
}

// Encode emits up to two segments per bit: the pulse, then the return to zero.
func (c *RZ) Encode(bs []bits.Bit) []signal.Segment {
	tl := newTimeline(2 * len(bs))
	for _, b := range bs {
		pulse := -c.v
		if b == bits.One {
			pulse = c.v
		}
		tl.split(c.tb, c.duty, pulse, 0)
	}

	return tl.segments()
}
