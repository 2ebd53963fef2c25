// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// manchesterSplit is the fixed mid-bit transition point of Manchester coding.
const manchesterSplit = 0.5

// Manchester follows the IEEE 802.3 convention: a 0 is high-then-low
// (+v, -v) and a 1 is low-then-high (-v, +v), with the transition at mid-bit.
// This is the inverse of the G.E. Thomas / IEEE 802.4 mapping.
type Manchester struct {
	params
}

// NewManchester validates tb and v (v > 0) and returns a Manchester coder.
func NewManchester(tb, v float64) (*Manchester, error) {
	p, err := newParams(SchemeManchester, Closed, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewManchester: %w", err)
	}

	return &Manchester{params: p}, nil
}

// Encode emits two half-period segments per bit.
func (c *Manchester) Encode(bs []bits.Bit) []signal.Segment {
	tl := newTimeline(2 * len(bs))
	for _, b := range bs {
		if b == bits.One {
			tl.split(c.tb, manchesterSplit, -c.v, c.v)
		} else {
			tl.split(c.tb, manchesterSplit, c.v, -c.v)
		}
	}

	return tl.segments()
}
