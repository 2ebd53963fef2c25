// Package coder turns bit sequences into piecewise-constant waveforms using
// classic line codes.
//
// 🚀 What is a line code?
//
//	A line code maps logical bits onto physical signal levels. The choice
//	of code decides the DC balance of the line, how many transitions a
//	receiver gets for clock recovery, and how much bandwidth is spent.
//
// ✨ Supported schemes:
//   - NRZ-L:      +v for 1, −v for 0
//   - NRZI:       a 1 toggles the level, a 0 holds it
//   - RZ:         polar pulse of width duty·tb, then return to 0
//   - Manchester: IEEE 802.3, 0 = high→low, 1 = low→high
//   - AMI:        marks alternate polarity, spaces are 0
//   - MLT-3:      a 1 steps through 0, +v, 0, −v
//   - HDB3:       AMI with 0000 replaced by 000V or B00V
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/linecode/bits"
//	  "github.com/katalvlaran/linecode/coder"
//	)
//
//	lc, err := coder.New(coder.SchemeHDB3, coder.WithAmplitude(-1))
//	if err != nil { … }
//	segs := lc.Encode(bits.MustParse("10000"))
//
// Every coder validates its parameters at construction and on every Set*
// call; a rejected value leaves the coder unchanged and returns one of
// ErrInvalidBitPeriod, ErrBadAmplitude or ErrWrongDuty. Encode itself never
// fails: it is pure, keeps no state between calls and returns segments that
// start at 0 and tile the time axis without gaps.
//
// Amplitude contracts differ per scheme. "Closed" schemes (NRZ-L, RZ,
// Manchester, MLT-3) require v > 0. "Open" schemes (NRZI, AMI, HDB3) accept
// any v ≠ 0 and use its sign to pick the initial polarity.
//
// Logging goes through a package-level zap logger (see SetLogger); it is a
// no-op unless a caller installs one.
package coder
