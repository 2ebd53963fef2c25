// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// NRZL is Non-Return-to-Zero, Level: +v for 1, -v for 0, one segment per bit.
// The amplitude must be strictly positive.
type NRZL struct {
	params
}

// NewNRZL validates tb and v (v > 0) and returns an NRZ-L coder.
func NewNRZL(tb, v float64) (*NRZL, error) {
	p, err := newParams(SchemeNRZL, Closed, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewNRZL: %w", err)
	}

	return &NRZL{params: p}, nil
}

// Encode maps every bit to a full-period segment at ±v.
func (c *NRZL) Encode(bs []bits.Bit) []signal.Segment {
	tl := newTimeline(len(bs))
	for _, b := range bs {
		level := -c.v
		if b == bits.One {
			level = c.v
		}
		tl.slot(c.tb, level)
	}

	return tl.segments()
}

// NRZI is Non-Return-to-Zero, Inverted: information lives in transitions.
// A 1 toggles the level before its segment, a 0 repeats the previous level.
// The level accumulator starts at v, so a negative v flips the initial
// polarity.
type NRZI struct {
	params
}

// NewNRZI validates tb and v (v ≠ 0) and returns an NRZ-I coder.
func NewNRZI(tb, v float64) (*NRZI, error) {
	p, err := newParams(SchemeNRZI, Open, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewNRZI: %w", err)
	}

	return &NRZI{params: p}, nil
}

// Encode emits one segment per bit at the running level.
func (c *NRZI) Encode(bs []bits.Bit) []signal.Segment {
	tl := newTimeline(len(bs))
	level := c.v
	for _, b := range bs {
		if b == bits.One {
			level = -level
		}
		tl.slot(c.tb, level)
	}

	return tl.segments()
}
