// SPDX-License-Identifier: MIT

package pattern

import (
	"math"

	"github.com/katalvlaran/linecode/bits"
)

// Random returns n independent bits, each a 1 with probability density
// (WithDensity, default 0.5). The RNG comes from WithRand, WithSeed, or a
// local source seeded with DefaultSeed, so output is reproducible.
func Random(n int, opts ...Option) ([]bits.Bit, error) {
	if err := checkLength("Random", n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if math.IsNaN(cfg.density) || cfg.density < 0 || cfg.density > 1 {
		return nil, patternErrorf("Random", ErrBadDensity, "p=%v", cfg.density)
	}

	rng := rngFrom(cfg, DefaultSeed)
	out := make([]bits.Bit, n)
	for i := range out {
		if rng.Float64() < cfg.density {
			out[i] = bits.One
		}
	}

	return out, nil
}
