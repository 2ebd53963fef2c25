package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/coder"
	"github.com/katalvlaran/linecode/internal/tui"
	"github.com/katalvlaran/linecode/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newModel(t *testing.T, s coder.Scheme, initial string) *tui.Model {
	t.Helper()
	lc, err := coder.New(s)
	require.NoError(t, err)
	m, err := tui.New(lc, initial, coder.DefaultDuty, nil)
	require.NoError(t, err)

	return m
}

func send(m *tui.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func TestNew_RejectsBadInput(t *testing.T) {
	lc, err := coder.New(coder.SchemeAMI)
	require.NoError(t, err)

	_, err = tui.New(lc, "10a", coder.DefaultDuty, nil)
	assert.ErrorIs(t, err, bits.ErrInvalidDigit)

	_, err = tui.New(lc, "10", 0, nil)
	assert.ErrorIs(t, err, coder.ErrWrongDuty)
}

func TestSelector_SwitchesScheme(t *testing.T) {
	m := newModel(t, coder.SchemeNRZL, "1010")
	assert.Equal(t, []float64{1, -1, 1, -1}, signal.Levels(m.Segments()))

	send(m, key(tea.KeyRight))
	assert.Equal(t, coder.SchemeNRZI, m.Scheme())
	assert.Equal(t, []float64{-1, -1, 1, 1}, signal.Levels(m.Segments()))

	send(m, key(tea.KeyLeft), key(tea.KeyLeft))
	assert.Equal(t, coder.SchemeAMI, m.Scheme(), "selector wraps around")
}

// TestBitsField_InvalidKeepsWaveform checks that a bad edit is flagged and
// the previous waveform stays.
func TestBitsField_InvalidKeepsWaveform(t *testing.T) {
	m := newModel(t, coder.SchemeNRZL, "10")
	before := m.Segments()

	send(m, key(tea.KeyDown), typeRunes("x"))
	assert.ErrorIs(t, m.FieldError("bits"), bits.ErrInvalidDigit)
	assert.Equal(t, before, m.Segments())

	send(m, key(tea.KeyBackspace), typeRunes("1"))
	assert.NoError(t, m.FieldError("bits"))
	assert.Equal(t, []float64{1, -1, 1}, signal.Levels(m.Segments()))
}

// TestAmplitudeField_FollowsSchemeRule types a negative amplitude: rejected
// under NRZ-L, accepted once an open scheme is selected.
func TestAmplitudeField_FollowsSchemeRule(t *testing.T) {
	m := newModel(t, coder.SchemeNRZL, "1")

	// coder → bits → tb → v (duty is hidden for NRZ-L)
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	send(m, key(tea.KeyBackspace), typeRunes("-"), typeRunes("2"))
	assert.ErrorIs(t, m.FieldError("v"), coder.ErrBadAmplitude)
	assert.Equal(t, []float64{1}, signal.Levels(m.Segments()))

	send(m, key(tea.KeyUp), key(tea.KeyUp), key(tea.KeyUp), key(tea.KeyRight))
	require.Equal(t, coder.SchemeNRZI, m.Scheme())
	assert.NoError(t, m.FieldError("v"))
	assert.Equal(t, []float64{2}, signal.Levels(m.Segments()), "NRZI seeded with -2 flips on the first mark")
}

func TestDutyField_OnlyForRZ(t *testing.T) {
	m := newModel(t, coder.SchemeNRZL, "1")
	assert.NotContains(t, m.View(), "duty")

	send(m, key(tea.KeyRight), key(tea.KeyRight))
	require.Equal(t, coder.SchemeRZ, m.Scheme())
	assert.Contains(t, m.View(), "duty")

	// coder → bits → tb → v → duty
	send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	send(m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), typeRunes("2"))
	assert.ErrorIs(t, m.FieldError("duty"), coder.ErrWrongDuty)

	send(m, key(tea.KeyBackspace), typeRunes("0.25"))
	assert.NoError(t, m.FieldError("duty"))
	segs := m.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, 0.25, segs[0].End)
}

func TestModes(t *testing.T) {
	m := newModel(t, coder.SchemeAMI, "1010101010101010101010101")

	send(m, key(tea.KeyTab))
	assert.Contains(t, m.View(), "toggle this help")
	send(m, key(tea.KeyTab))
	assert.NotContains(t, m.View(), "toggle this help")

	// arrows scroll the waveform only in the visualizer section
	send(m, key(tea.KeyShiftDown), key(tea.KeyLeft))
	assert.Equal(t, coder.SchemeAMI, m.Scheme())
	send(m, key(tea.KeyShiftUp), key(tea.KeyLeft))
	assert.Equal(t, coder.SchemeMLT3, m.Scheme())

	cmd := send(m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Resizes(t *testing.T) {
	m := newModel(t, coder.SchemeMLT3, "1111")
	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	assert.Contains(t, out, "MLT-3")
	assert.Contains(t, out, "Waveform")
	assert.Contains(t, out, "+V")
}
