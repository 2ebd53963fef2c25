// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linecode/signal"
)

// Minimum plot area; smaller terminals get a clipped but valid chart.
const (
	minPlotWidth  = 8
	minPlotHeight = 3
)

// Box-drawing runes used by the step plot.
const (
	runeFlat     = '─'
	runeRise     = '┘' // bottom of a rising edge
	runeRiseTop  = '┌'
	runeFall     = '┐' // top of a falling edge
	runeFallBase = '└'
	runeEdge     = '│'
	runeZero     = '┈'
)

// renderPlot rasterizes a step polyline into h rows of w cells. Each column
// samples the level at its centre time; level changes between columns are
// drawn as vertical edges in the column where the new level starts.
// Bipolar windows get a dotted zero guide.
func renderPlot(points []signal.Point, b signal.Bounds, w, h int) []string {
	w = max(w, minPlotWidth)
	h = max(h, minPlotHeight)

	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", w))
	}
	if len(points) == 0 {
		return joinRows(grid)
	}

	row := func(y float64) int {
		span := b.YMax - b.YMin
		if span <= 0 {
			return h - 1
		}
		r := int(math.Round((b.YMax - y) / span * float64(h-1)))
		return min(max(r, 0), h-1)
	}

	if b.Symmetric() {
		zr := row(0)
		for c := range grid[zr] {
			grid[zr][c] = runeZero
		}
	}

	xSpan := b.XMax - b.XMin
	prev := -1
	for c := 0; c < w; c++ {
		x := b.XMin + (float64(c)+0.5)/float64(w)*xSpan
		r := row(signal.LevelAt(points, x))

		switch {
		case prev < 0 || prev == r:
			grid[r][c] = runeFlat
		case r < prev:
			grid[prev][c] = runeRise
			for k := r + 1; k < prev; k++ {
				grid[k][c] = runeEdge
			}
			grid[r][c] = runeRiseTop
		default:
			grid[prev][c] = runeFall
			for k := prev + 1; k < r; k++ {
				grid[k][c] = runeEdge
			}
			grid[r][c] = runeFallBase
		}
		prev = r
	}

	return joinRows(grid)
}

func joinRows(grid [][]rune) []string {
	out := make([]string, len(grid))
	for i, r := range grid {
		out[i] = string(r)
	}

	return out
}

// yLabels returns the gutter labels for the top, middle and bottom rows.
func yLabels(b signal.Bounds) (top, mid, bottom string) {
	if b.Symmetric() {
		return "+V", "0", "-V"
	}

	return "+V", "", "0"
}

// xLabels formats the start, centre and end times of the window.
func xLabels(b signal.Bounds) (start, centre, end string) {
	return fmt.Sprintf("%.1f", b.XMin),
		fmt.Sprintf("%.1f", (b.XMin+b.XMax)/2),
		fmt.Sprintf("%.1f", b.XMax)
}
