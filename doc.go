// Package linecode turns bit sequences into line-coded waveforms and lets
// you inspect them, from a plain library call up to an interactive terminal
// viewer.
//
// 🚀 What is linecode?
//
//	A small, deterministic encoding engine that brings together:
//		• Bits: parsing and formatting of '0'/'1' strings
//		• Coders: NRZ-L, NRZI, RZ, Manchester (IEEE 802.3), AMI, MLT-3, HDB3
//		• Signal: time segments, step polylines and a scrollable viewport
//		• Patterns: alternating, constant, PRBS-7/9/15 and seeded random input
//
// ✨ Why choose linecode?
//
//   - Validated parameters – bit period, amplitude and duty are checked up front
//   - Pure encoders – Encode never fails and keeps no state between calls
//   - One factory – coder.New builds any scheme from functional options
//
// Everything is organized under these packages:
//
//	bits/    — the Bit type, Parse and Format
//	coder/   — the LineCoder capability, validators and every scheme
//	signal/  — Segment, Point, StepPoints and Viewport
//	pattern/ — deterministic test-pattern generators
//	cmd/linecode — the CLI (encode, coders, view)
//
// Quick ASCII example, AMI of 1011:
//
//	 +v ┌─┐   ┌─┐
//	  0 ┘ └───┘ │ ┌
//	 -v         └─┘
//
//	go get github.com/katalvlaran/linecode
package linecode
