// SPDX-License-Identifier: MIT

package signal

import "math"

// DefaultMaxPoints is the number of polyline points a Viewport shows at once.
const DefaultMaxPoints = 35

const (
	flatSpan   = 1e-12 // y spans below this are treated as flat
	padFactor  = 0.1   // axis padding as a fraction of the span
	padMinimum = 1e-6  // lower bound for any padding
)

// Bounds is the axis range of a plotted window.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Symmetric reports whether the y axis straddles zero (bipolar waveform).
func (b Bounds) Symmetric() bool {
	return b.YMin < 0 && b.YMax > 0
}

// Viewport is a scrollable window of at most n points over a polyline.
// The zero value is not usable; construct with NewViewport.
//
// Viewport is not safe for concurrent use.
type Viewport struct {
	points []Point
	start  int
	max    int
}

// NewViewport returns an empty viewport showing up to n points.
// An n below 1 selects DefaultMaxPoints.
func NewViewport(n int) *Viewport {
	if n < 1 {
		n = DefaultMaxPoints
	}

	return &Viewport{max: n}
}

// SetPoints replaces the polyline and scrolls to its tail, so the newest
// part of the waveform is visible.
func (v *Viewport) SetPoints(points []Point) {
	v.points = points
	v.start = v.maxStart()
}

// Reset scrolls back to the tail.
func (v *Viewport) Reset() {
	v.start = v.maxStart()
}

// Len returns the total number of points held.
func (v *Viewport) Len() int { return len(v.points) }

// Start returns the index of the first visible point.
func (v *Viewport) Start() int { return v.start }

// Left scrolls one point towards the beginning.
func (v *Viewport) Left() {
	if v.start > 0 {
		v.start--
	}
}

// Right scrolls one point towards the end, stopping once the tail is visible.
func (v *Viewport) Right() {
	v.start = min(v.start+1, v.maxStart())
}

// Visible returns the points to draw. One point before the window is
// included, when it exists, so the first visible edge is connected.
func (v *Viewport) Visible() []Point {
	total := len(v.points)
	start := min(v.start, v.maxStart())
	from := max(start-1, 0)
	to := min(start+v.count(), total)

	return v.points[from:to]
}

// Bounds computes the axis range for the visible window.
//
// X spans from the first visible point to the last one (0..1 when empty).
// Y is symmetric around zero for bipolar data, zero-based otherwise, padded
// by 10% so flat lines do not sit on the frame.
func (v *Viewport) Bounds() Bounds {
	total := len(v.points)
	slice := v.Visible()

	x0, x1 := 0.0, 1.0
	if total > 0 {
		x0 = v.points[min(v.start, v.maxStart())].X
	}
	if len(slice) > 0 {
		x1 = slice[len(slice)-1].X
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range slice {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}
	if math.IsInf(yMin, 0) || math.IsInf(yMax, 0) || math.Abs(yMax-yMin) < flatSpan {
		yMin, yMax = 0, 1
	}

	var y0, y1 float64
	switch {
	case yMin < 0 && yMax > 0:
		m := math.Max(math.Max(math.Abs(yMax), math.Abs(yMin)), 1)
		m += pad(m)
		y0, y1 = -m, m
	case yMin < 0:
		m := math.Max(math.Abs(yMin), 1)
		m += pad(m)
		y0, y1 = -m, m
	default:
		top := yMax
		if top <= 0 {
			top = 1
		}
		y0, y1 = 0, top+pad(math.Max(top, 0.1))
	}

	return Bounds{XMin: x0, XMax: x1, YMin: y0, YMax: y1}
}

func (v *Viewport) count() int {
	return min(v.max, max(len(v.points), 1))
}

func (v *Viewport) maxStart() int {
	return max(len(v.points)-v.count(), 0)
}

func pad(span float64) float64 {
	return math.Max(span*padFactor, padMinimum)
}
