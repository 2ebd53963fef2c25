// SPDX-License-Identifier: MIT

// Package signal defines the value produced by every line coder: a Segment,
// a half-open time interval [Start, End) held at a constant Level.
//
// A waveform is simply an ordered []Segment. Segments returned by a single
// encode call are contiguous: the first starts at 0 and each Start equals the
// previous End. Zero-width segments are never produced.
//
// On top of the value type the package offers the small helpers a renderer
// needs to plot a step waveform:
//
//   - Levels, Duration, Contiguous — inspection of a []Segment.
//   - StepPoints — converts segments into (x, y) polyline points with
//     explicit vertical edges at level changes.
//   - Viewport — a scrollable window over those points plus the axis
//     Bounds to draw them with.
package signal
