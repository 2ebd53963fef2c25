// SPDX-License-Identifier: MIT

package pattern

import (
	"strings"

	"github.com/katalvlaran/linecode/bits"
)

// Pattern names accepted by Named.
const (
	NameAlternating = "alt"
	NameOnes        = "ones"
	NameZeros       = "zeros"
	NamePRBS7       = "prbs7"
	NamePRBS9       = "prbs9"
	NamePRBS15      = "prbs15"
	NameRandom      = "random"
)

// Names lists every name Named accepts, in help-text order.
func Names() []string {
	return []string{NameAlternating, NameOnes, NameZeros, NamePRBS7, NamePRBS9, NamePRBS15, NameRandom}
}

// Named dispatches to a generator by name (case-insensitive).
// opts only affect "random".
func Named(name string, n int, opts ...Option) ([]bits.Bit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameAlternating:
		return Alternating(n)
	case NameOnes:
		return Ones(n)
	case NameZeros:
		return Zeros(n)
	case NamePRBS7:
		return PRBS(7, n)
	case NamePRBS9:
		return PRBS(9, n)
	case NamePRBS15:
		return PRBS(15, n)
	case NameRandom:
		return Random(n, opts...)
	default:
		return nil, patternErrorf("Named", ErrUnknownPattern, "%q", name)
	}
}
