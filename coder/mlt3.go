// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// mlt3Phases is the length of the MLT-3 level cycle 0, +v, 0, -v.
const mlt3Phases = 4

// MLT3 is Multi-Level Transmit 3. The line walks the cycle
// [0, +v, 0, -v]: a 1 advances one step, a 0 holds. Consecutive non-zero
// levels always alternate sign with a zero in between.
type MLT3 struct {
	params
}

// NewMLT3 validates tb and v (v > 0) and returns an MLT-3 coder.
func NewMLT3(tb, v float64) (*MLT3, error) {
	p, err := newParams(SchemeMLT3, Closed, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewMLT3: %w", err)
	}

	return &MLT3{params: p}, nil
}

// Encode emits one segment per bit at the current cycle level.
func (c *MLT3) Encode(bs []bits.Bit) []signal.Segment {
	cycle := [mlt3Phases]float64{0, c.v, 0, -c.v}
	phase := 0

	tl := newTimeline(len(bs))
	for _, b := range bs {
		if b == bits.One {
			phase = (phase + 1) % mlt3Phases
		}
		tl.slot(c.tb, cycle[phase])
	}

	return tl.segments()
}
