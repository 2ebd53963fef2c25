package pattern_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPatterns(t *testing.T) {
	alt, err := pattern.Alternating(5)
	require.NoError(t, err)
	assert.Equal(t, "10101", bits.Format(alt))

	ones, err := pattern.Ones(3)
	require.NoError(t, err)
	assert.Equal(t, "111", bits.Format(ones))

	zeros, err := pattern.Zeros(4)
	require.NoError(t, err)
	assert.Equal(t, "0000", bits.Format(zeros))

	c, err := pattern.Constant(2, bits.Bit(7))
	require.NoError(t, err)
	assert.Equal(t, []bits.Bit{bits.One, bits.One}, c, "non-zero bits normalize to One")
}

func TestRepeat(t *testing.T) {
	got, err := pattern.Repeat(bits.MustParse("110"), 7)
	require.NoError(t, err)
	assert.Equal(t, "1101101", bits.Format(got))

	_, err = pattern.Repeat(nil, 3)
	assert.ErrorIs(t, err, pattern.ErrEmptyWord)
}

// TestBadLength covers the n < 1 guard on every generator.
func TestBadLength(t *testing.T) {
	gens := map[string]func(int) ([]bits.Bit, error){
		"alt":    pattern.Alternating,
		"ones":   pattern.Ones,
		"zeros":  pattern.Zeros,
		"repeat": func(n int) ([]bits.Bit, error) { return pattern.Repeat(bits.MustParse("1"), n) },
		"prbs7":  func(n int) ([]bits.Bit, error) { return pattern.PRBS(7, n) },
		"random": func(n int) ([]bits.Bit, error) { return pattern.Random(n) },
	}
	for name, gen := range gens {
		for _, n := range []int{0, -3} {
			got, err := gen(n)
			assert.ErrorIs(t, err, pattern.ErrBadLength, "%s n=%d", name, n)
			assert.Nil(t, got)
		}
	}
}

// TestPRBS_MaximalLength checks period 2ⁿ−1 and 2ⁿ⁻¹ ones per period.
func TestPRBS_MaximalLength(t *testing.T) {
	for _, order := range pattern.Orders() {
		period := pattern.Period(order)
		require.Equal(t, 1<<order-1, period)

		seq, err := pattern.PRBS(order, 2*period)
		require.NoError(t, err)

		assert.Equal(t, seq[:period], seq[period:], "order %d repeats after its period", order)

		ones, _ := bits.Count(seq[:period])
		assert.Equal(t, 1<<(order-1), ones, "order %d ones per period", order)

		// a maximal sequence has a run of n-1 zeros but never n
		assert.Equal(t, order-1, bits.LongestZeroRun(seq), "order %d longest zero run", order)
	}
}

func TestPRBS_UnsupportedOrder(t *testing.T) {
	_, err := pattern.PRBS(8, 10)
	assert.ErrorIs(t, err, pattern.ErrUnsupportedOrder)
	assert.Equal(t, 0, pattern.Period(8))
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := pattern.Random(64, pattern.WithSeed(42))
	require.NoError(t, err)
	b, err := pattern.Random(64, pattern.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	d1, err := pattern.Random(64)
	require.NoError(t, err)
	d2, err := pattern.Random(64, pattern.WithSeed(pattern.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, d1, d2, "no RNG option means DefaultSeed")
}

// TestRandom_SharedRand checks that WithRand advances a caller-owned stream.
func TestRandom_SharedRand(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	first, err := pattern.Random(128, pattern.WithRand(r))
	require.NoError(t, err)
	second, err := pattern.Random(128, pattern.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	assert.Panics(t, func() { pattern.WithRand(nil) })
}

func TestRandom_Density(t *testing.T) {
	all, err := pattern.Random(50, pattern.WithDensity(1))
	require.NoError(t, err)
	ones, _ := bits.Count(all)
	assert.Equal(t, 50, ones)

	none, err := pattern.Random(50, pattern.WithDensity(0))
	require.NoError(t, err)
	ones, _ = bits.Count(none)
	assert.Equal(t, 0, ones)

	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := pattern.Random(8, pattern.WithDensity(p))
		assert.ErrorIs(t, err, pattern.ErrBadDensity, "p=%v", p)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range pattern.Names() {
		got, err := pattern.Named(name, 16, pattern.WithSeed(3))
		require.NoError(t, err, name)
		assert.Len(t, got, 16, name)
	}

	got, err := pattern.Named(" PRBS7 ", 10)
	require.NoError(t, err)
	want, _ := pattern.PRBS(7, 10)
	assert.Equal(t, want, got)

	_, err = pattern.Named("prbs31", 10)
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)
}
