// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// hdb3.go — High Density Bipolar of order 3.
//
// HDB3 is AMI with a bound on zero runs: every fourth consecutive zero is
// replaced, together with the three zeros before it, by a block that
// carries a bipolar violation (V), optionally preceded by a balancing
// pulse (B):
//
//	marks since last substitution odd  →  0 0 0 V
//	marks since last substitution even →  B 0 0 V
//
// Encoding runs in two passes. Symbols rewrites history (the three
// trailing silences are dropped when a substitution fires); Encode then
// lays the symbols out on the timeline.

package coder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/signal"
)

// substitutionRun is the zero-run length that triggers a substitution.
const substitutionRun = 4

// Symbol is one element of the HDB3 symbol stream.
type Symbol uint8

const (
	// Silence is the zero level.
	Silence Symbol = iota
	// Positive is sent as +v.
	Positive
	// Negative is sent as -v.
	Negative
)

// String returns "0", "+" or "-".
func (s Symbol) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "0"
	}
}

// HDB3 is the High Density Bipolar 3 coder. The amplitude sign selects
// the initial polarity, like AMI.
type HDB3 struct {
	params
}

// NewHDB3 validates tb and v (v ≠ 0) and returns an HDB3 coder.
func NewHDB3(tb, v float64) (*HDB3, error) {
	p, err := newParams(SchemeHDB3, Open, tb, v)
	if err != nil {
		return nil, fmt.Errorf("NewHDB3: %w", err)
	}

	return &HDB3{params: p}, nil
}

// Symbols runs the substitution pass and returns one symbol per bit.
// Trailing runs of fewer than four zeros stay plain Silence.
func (c *HDB3) Symbols(bs []bits.Bit) []Symbol {
	syms := make([]Symbol, 0, len(bs))
	polarity := math.Abs(c.v)
	marks, zeros := 0, 0

	for _, b := range bs {
		if b == bits.One {
			polarity = -polarity
			syms = append(syms, markOf(polarity))
			marks++
			zeros = 0
			continue
		}

		zeros++
		if zeros < substitutionRun {
			syms = append(syms, Silence)
			continue
		}

		// drop the silences already emitted for this run
		syms = syms[:len(syms)-(substitutionRun-1)]
		if marks%2 == 1 {
			syms = append(syms, Silence, Silence, Silence, markOf(polarity))
		} else {
			polarity = -polarity
			m := markOf(polarity)
			syms = append(syms, m, Silence, Silence, m)
		}
		marks, zeros = 0, 0
	}

	return syms
}

// Encode emits one full-period segment per symbol.
func (c *HDB3) Encode(bs []bits.Bit) []signal.Segment {
	syms := c.Symbols(bs)

	tl := newTimeline(len(syms))
	for _, s := range syms {
		tl.slot(c.tb, c.levelOf(s))
	}

	return tl.segments()
}

func (c *HDB3) levelOf(s Symbol) float64 {
	switch s {
	case Positive:
		return c.v
	case Negative:
		return -c.v
	default:
		return 0
	}
}

func markOf(polarity float64) Symbol {
	if polarity > 0 {
		return Positive
	}

	return Negative
}
