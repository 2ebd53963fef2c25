package bits_test

import (
	"testing"

	"github.com/katalvlaran/linecode/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_OnlyBits verifies a long valid string maps digit by digit.
func TestParse_OnlyBits(t *testing.T) {
	input := "111001010011010111010111010101010110"

	got, err := bits.Parse(input)
	require.NoError(t, err)
	require.Len(t, got, len(input))

	want := []bits.Bit{
		1, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1,
		0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0,
	}
	assert.Equal(t, want, got)
}

// TestParse_Rejects checks that empty and non-binary input never yields bits.
func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", bits.ErrEmptyInput},
		{"letters and digits", "abc135", bits.ErrInvalidDigit},
		{"nine after zero", "09", bits.ErrInvalidDigit},
		{"trailing space", "0101 ", bits.ErrInvalidDigit},
		{"non ascii", "01½", bits.ErrInvalidDigit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bits.Parse(tc.input)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, got, "rejected input must not be truncated into a partial result")
		})
	}
}

// TestParse_ErrorNamesOffset ensures the wrapped error points at the bad rune.
func TestParse_ErrorNamesOffset(t *testing.T) {
	_, err := bits.Parse("0110x1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 4")
	assert.Contains(t, err.Error(), `'x'`)
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "10000", "1100001100"} {
		assert.Equal(t, s, bits.Format(bits.MustParse(s)))
	}
	assert.Equal(t, "", bits.Format(nil))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { bits.MustParse("2") })
}

func TestCountAndLongestZeroRun(t *testing.T) {
	bs := bits.MustParse("1000010000000")

	ones, zeros := bits.Count(bs)
	assert.Equal(t, 2, ones)
	assert.Equal(t, 11, zeros)
	assert.Equal(t, 7, bits.LongestZeroRun(bs))
	assert.Equal(t, 0, bits.LongestZeroRun(bits.MustParse("111")))
}

func TestBit_String(t *testing.T) {
	assert.Equal(t, "0", bits.Zero.String())
	assert.Equal(t, "1", bits.One.String())
}
