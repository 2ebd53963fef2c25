package coder_test

import (
	"testing"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/coder"
)

// benchInput alternates dense and sparse regions so HDB3 substitutes often.
func benchInput(n int) []bits.Bit {
	bs := make([]bits.Bit, n)
	for i := range bs {
		if i%16 < 3 {
			bs[i] = bits.One
		}
	}

	return bs
}

func benchmarkScheme(b *testing.B, s coder.Scheme, n int) {
	lc, err := coder.New(s)
	if err != nil {
		b.Fatalf("New(%s) failed: %v", s.ID(), err)
	}
	in := benchInput(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lc.Encode(in)
	}
}

// BenchmarkEncode_4K runs every scheme over 4096 bits.
func BenchmarkEncode_4K(b *testing.B) {
	for _, s := range coder.Schemes() {
		b.Run(s.ID(), func(b *testing.B) { benchmarkScheme(b, s, 4096) })
	}
}

// BenchmarkHDB3_Symbols_64K isolates the substitution pass.
func BenchmarkHDB3_Symbols_64K(b *testing.B) {
	hdb3, err := coder.NewHDB3(1, 1)
	if err != nil {
		b.Fatal(err)
	}
	in := benchInput(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hdb3.Symbols(in)
	}
}
