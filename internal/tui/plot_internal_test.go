package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/linecode/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlot_FallingEdge(t *testing.T) {
	points := []signal.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: 2, Y: -1}}
	b := signal.Bounds{XMin: 0, XMax: 2, YMin: -1.1, YMax: 1.1}

	rows := renderPlot(points, b, 10, 5)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, 10, utf8.RuneCountInString(r))
	}

	assert.Equal(t, "─────┐    ", rows[0])
	assert.Equal(t, "     │    ", rows[1])
	assert.Equal(t, "┈┈┈┈┈│┈┈┈┈", rows[2], "zero guide on bipolar windows")
	assert.Equal(t, "     │    ", rows[3])
	assert.Equal(t, "     └────", rows[4])
}

func TestRenderPlot_RisingEdgeUnipolar(t *testing.T) {
	points := []signal.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	b := signal.Bounds{XMin: 0, XMax: 2, YMin: 0, YMax: 1}

	rows := renderPlot(points, b, 8, 3)
	require.Len(t, rows, 3)
	assert.Equal(t, "    ┌───", rows[0])
	assert.Equal(t, "    │   ", rows[1])
	assert.Equal(t, "────┘   ", rows[2])
}

func TestRenderPlot_EmptyAndTiny(t *testing.T) {
	rows := renderPlot(nil, signal.Bounds{XMax: 1, YMax: 1}, 1, 1)
	require.Len(t, rows, minPlotHeight)
	for _, r := range rows {
		assert.Equal(t, minPlotWidth, utf8.RuneCountInString(r))
	}
}

func TestAxisLabels(t *testing.T) {
	top, mid, bottom := yLabels(signal.Bounds{YMin: -1, YMax: 1})
	assert.Equal(t, []string{"+V", "0", "-V"}, []string{top, mid, bottom})

	top, mid, bottom = yLabels(signal.Bounds{YMin: 0, YMax: 1})
	assert.Equal(t, []string{"+V", "", "0"}, []string{top, mid, bottom})

	x0, xm, x1 := xLabels(signal.Bounds{XMin: 2, XMax: 5})
	assert.Equal(t, []string{"2.0", "3.5", "5.0"}, []string{x0, xm, x1})
}
