// SPDX-License-Identifier: MIT

package pattern

import "github.com/katalvlaran/linecode/bits"

// Alternating returns 1010… of length n, starting with a 1.
func Alternating(n int) ([]bits.Bit, error) {
	if err := checkLength("Alternating", n); err != nil {
		return nil, err
	}

	out := make([]bits.Bit, n)
	for i := 0; i < n; i += 2 {
		out[i] = bits.One
	}

	return out, nil
}

// Constant returns n copies of b. Any non-zero b counts as One.
func Constant(n int, b bits.Bit) ([]bits.Bit, error) {
	if err := checkLength("Constant", n); err != nil {
		return nil, err
	}
	if b != bits.Zero {
		b = bits.One
	}

	out := make([]bits.Bit, n)
	for i := range out {
		out[i] = b
	}

	return out, nil
}

// Ones returns n ones.
func Ones(n int) ([]bits.Bit, error) { return Constant(n, bits.One) }

// Zeros returns n zeros. Handy for exercising HDB3 substitution.
func Zeros(n int) ([]bits.Bit, error) { return Constant(n, bits.Zero) }

// Repeat tiles word until n bits are produced; the last copy may be cut short.
func Repeat(word []bits.Bit, n int) ([]bits.Bit, error) {
	if len(word) == 0 {
		return nil, patternErrorf("Repeat", ErrEmptyWord, "n=%d", n)
	}
	if err := checkLength("Repeat", n); err != nil {
		return nil, err
	}

	out := make([]bits.Bit, n)
	for i := range out {
		out[i] = word[i%len(word)]
	}

	return out, nil
}
