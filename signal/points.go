// SPDX-License-Identifier: MIT

package signal

import "math"

// epsilon is the level difference below which two adjacent segments are
// considered to share a level.
const epsilon = 2.220446049250313e-16

// Point is a chart coordinate: X is time, Y is level.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StepPoints converts segments into the polyline of a step plot.
//
// The first segment contributes its start and end. Every following segment
// contributes a vertical edge point (prev.End, next.Level) when its level
// differs from the previous one, then its own end (next.End, next.Level).
// Drawing straight lines between consecutive points yields the waveform.
//
// Complexity: O(n) time, at most 3n points.
func StepPoints(segs []Segment) []Point {
	if len(segs) == 0 {
		return nil
	}

	points := make([]Point, 0, len(segs)*3)
	points = append(points,
		Point{X: segs[0].Start, Y: segs[0].Level},
		Point{X: segs[0].End, Y: segs[0].Level},
	)
	for i := 1; i < len(segs); i++ {
		prev, next := segs[i-1], segs[i]
		if math.Abs(next.Level-prev.Level) > epsilon {
			points = append(points, Point{X: prev.End, Y: next.Level})
		}
		points = append(points, Point{X: next.End, Y: next.Level})
	}

	return points
}

// LevelAt returns the Y of the last point whose X is <= x, which for a
// StepPoints polyline is the waveform level at time x. Before the first
// point it returns the first level; for no points it returns 0.
func LevelAt(points []Point, x float64) float64 {
	if len(points) == 0 {
		return 0
	}

	y := points[0].Y
	for _, p := range points {
		if p.X > x {
			break
		}
		y = p.Y
	}

	return y
}
