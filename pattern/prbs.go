// SPDX-License-Identifier: MIT
// Package: linecode/pattern
//
// prbs.go — maximal-length pseudo-random binary sequences.
//
// A Fibonacci LFSR of order n with taps (n, k) satisfies
// s[t] = s[t-n] XOR s[t-k]. With the polynomials below the sequence has
// period 2ⁿ−1 and contains exactly 2ⁿ⁻¹ ones per period:
//
//	PRBS7   x⁷  + x⁶  + 1
//	PRBS9   x⁹  + x⁵  + 1
//	PRBS15  x¹⁵ + x¹⁴ + 1
//
// The register starts all-ones, so the first n outputs are not all zero.

package pattern

import "github.com/katalvlaran/linecode/bits"

// tapFor maps a supported order to its second feedback tap.
var tapFor = map[int]uint{
	7:  6,
	9:  5,
	15: 14,
}

// Orders returns the supported PRBS orders, ascending.
func Orders() []int { return []int{7, 9, 15} }

// Period returns 2ⁿ−1 for a supported order, or 0.
func Period(order int) int {
	if _, ok := tapFor[order]; !ok {
		return 0
	}

	return 1<<order - 1
}

// PRBS returns the first n bits of the order-`order` sequence.
func PRBS(order, n int) ([]bits.Bit, error) {
	tap, ok := tapFor[order]
	if !ok {
		return nil, patternErrorf("PRBS", ErrUnsupportedOrder, "order=%d", order)
	}
	if err := checkLength("PRBS", n); err != nil {
		return nil, err
	}

	hi := uint(order)
	mask := uint32(1)<<hi - 1
	state := mask

	out := make([]bits.Bit, n)
	for i := range out {
		fb := (state>>(hi-1) ^ state>>(tap-1)) & 1
		state = (state<<1 | fb) & mask
		out[i] = bits.Bit(fb)
	}

	return out, nil
}
