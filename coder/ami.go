// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// AMI is bipolar Alternate Mark Inversion. A 0 is sent as level 0; every 1
// (mark) takes the polarity opposite to the previous mark. The accumulator
// holds the last mark's polarity and is seeded with v, so with v > 0 the
// first mark is -v and with v < 0 it is +|v|.
//
// Long runs of zeros carry no transitions at all; HDB3 fixes that.
type AMI struct {
	params
}

// NewAMI validates tb and v (v ≠ 0) and returns an AMI coder.
func NewAMI(tb, v float64) (*AMI, error) {
	p, err := newParams(SchemeAMI, Open, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewAMI: %w", err)
	}

	return &AMI{params: p}, nil
}

// Encode emits one segment per bit.
func (c *AMI) Encode(bs []bits.Bit) []signal.Segment {
	tl := newTimeline(len(bs))
	lastMark := c.v
	for _, b := range bs {
		if b == bits.One {
			lastMark = -lastMark
			tl.slot(c.tb, lastMark)
			continue
		}
		tl.slot(c.tb, 0)
	}

	return tl.segments()
}
