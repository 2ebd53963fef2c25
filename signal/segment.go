// SPDX-License-Identifier: MIT

package signal

import "math"

// Segment is a constant-level span of a waveform over [Start, End).
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Level float64 `json:"level"`
}

// NewSegment builds a Segment. It performs no validation; coders only emit
// segments with End > Start.
func NewSegment(start, end, level float64) Segment {
	return Segment{Start: start, End: end, Level: level}
}

// Width returns End - Start.
func (s Segment) Width() float64 {
	return s.End - s.Start
}

// Levels returns the level of every segment, in order.
func Levels(segs []Segment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Level
	}

	return out
}

// Duration returns the end time of the last segment, or 0 for an empty waveform.
func Duration(segs []Segment) float64 {
	if len(segs) == 0 {
		return 0
	}

	return segs[len(segs)-1].End
}

// Contiguous reports whether segs starts at 0, has no zero-width segment and
// every Start equals the previous End exactly. An empty waveform is contiguous.
func Contiguous(segs []Segment) bool {
	if len(segs) == 0 {
		return true
	}
	if segs[0].Start != 0 {
		return false
	}
	for i, s := range segs {
		if !(s.End > s.Start) {
			return false
		}
		if i > 0 && s.Start != segs[i-1].End {
			return false
		}
	}

	return true
}

// Transitions counts level changes between adjacent segments.
func Transitions(segs []Segment) int {
	n := 0
	for i := 1; i < len(segs); i++ {
		if math.Abs(segs[i].Level-segs[i-1].Level) > epsilon {
			n++
		}
	}

	return n
}
