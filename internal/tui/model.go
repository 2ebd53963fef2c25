// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/coder"
	"github.com/katalvlaran/linecode/signal"
	"go.uber.org/zap"
)

// DefaultBits is the sequence shown when the viewer starts without one.
const DefaultBits = "0100110000100001"

// Fallback layout before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeRows    = 15 // title, form, borders, labels, footer
	gutterWidth   = 3
)

type mode int

const (
	modeParams mode = iota
	modeVisualizer
	modeHelp
)

func (md mode) String() string {
	switch md {
	case modeVisualizer:
		return "visualizer"
	case modeHelp:
		return "help"
	default:
		return "params"
	}
}

// Model is the bubbletea model of the viewer.
type Model struct {
	lc   coder.LineCoder
	bits []bits.Bit
	duty float64
	segs []signal.Segment
	vp   *signal.Viewport

	inputs [fieldCount]textinput.Model
	errs   [fieldCount]error
	focus  field

	mode, lastMode mode
	width, height  int

	log *zap.Logger
}

// New builds a viewer around lc showing initial, which must parse as bits.
// duty seeds the RZ pulse fraction; it is used whenever RZ is selected.
// A nil logger disables logging.
func New(lc coder.LineCoder, initial string, duty float64, log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	bs, err := bits.Parse(initial)
	if err != nil {
		return nil, fmt.Errorf("tui.New: %w", err)
	}
	if dc, ok := lc.(coder.DutyCoder); ok {
		duty = dc.Duty()
	}
	if duty, err = coder.CheckDuty(duty); err != nil {
		return nil, fmt.Errorf("tui.New: %w", err)
	}

	m := &Model{
		lc:     lc,
		bits:   bs,
		duty:   duty,
		vp:     signal.NewViewport(signal.DefaultMaxPoints),
		width:  defaultWidth,
		height: defaultHeight,
		log:    log,
	}
	m.inputs[fieldBits] = newInput(fieldLabels[fieldBits], initial)
	m.inputs[fieldTB] = newInput(fieldLabels[fieldTB], formatFloat(lc.BitPeriod()))
	m.inputs[fieldV] = newInput(fieldLabels[fieldV], formatFloat(lc.Amplitude()))
	m.inputs[fieldDuty] = newInput(fieldLabels[fieldDuty], formatFloat(duty))
	m.setFocus(fieldCoder)
	m.encode()

	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.log.Info("viewer started", zap.Stringer("scheme", m.lc.Scheme()))
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.log.Info("viewer terminated")
			return m, tea.Quit
		case "tab":
			m.toggleHelp()
			return m, nil
		case "shift+up":
			m.swapMode(modeParams)
			return m, nil
		case "shift+down":
			m.swapMode(modeVisualizer)
			return m, nil
		}

		switch m.mode {
		case modeParams:
			return m, m.updateParams(msg)
		case modeVisualizer:
			m.updateVisualizer(msg)
		}
		return m, nil
	}

	// cursor blink and other input-internal messages
	if m.focus != fieldCoder {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateParams(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		m.moveFocus(-1)
		return nil
	case "down", "enter":
		m.moveFocus(1)
		return nil
	}

	if m.focus == fieldCoder {
		switch msg.String() {
		case "left", "h":
			m.switchScheme(m.lc.Scheme().Prev())
		case "right", "l":
			m.switchScheme(m.lc.Scheme().Next())
		}
		return nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.apply(m.focus)
		m.encode()
	}

	return cmd
}

func (m *Model) updateVisualizer(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		m.vp.Left()
	case "right", "l":
		m.vp.Right()
	case "end":
		m.vp.Reset()
	}
}

func (m *Model) toggleHelp() {
	if m.mode == modeHelp {
		m.swapMode(m.lastMode)
		return
	}
	m.swapMode(modeHelp)
}

func (m *Model) swapMode(md mode) {
	if md == m.mode {
		return
	}
	m.lastMode, m.mode = m.mode, md
	m.log.Debug("mode transitioned", zap.Stringer("mode", md))
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("linecode"))
	b.WriteString(" ")
	b.WriteString(subTitleStyle.Render(m.lc.Scheme().String()))
	b.WriteString("\n\n")

	if m.mode == modeHelp {
		b.WriteString(m.viewHelp())
	} else {
		b.WriteString(m.viewParams())
		b.WriteString("\n")
		b.WriteString(m.viewPlot())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc quit • tab help • shift+↑/↓ swap section • ←/→ scroll waveform"))

	return b.String()
}

func (m *Model) viewParams() string {
	var b strings.Builder

	selector := fmt.Sprintf("◀ %s ▶", m.lc.Scheme())
	if m.focus == fieldCoder {
		selector = selectedStyle.Render(selector)
	}
	b.WriteString(textStyle.Render("coder: "))
	b.WriteString(selector)

	for f := fieldBits; f < fieldCount; f++ {
		if !m.enabled(f) {
			continue
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[f].View())
		if err := m.errs[f]; err != nil {
			b.WriteString(" ")
			b.WriteString(errorStyle.Render("✗ " + err.Error()))
		}
	}

	return panel(m.mode == modeParams).Render(b.String())
}

func (m *Model) viewPlot() string {
	w := max(m.width-gutterWidth-4, minPlotWidth)
	h := max(m.height-chromeRows, minPlotHeight)

	bounds := m.vp.Bounds()
	rows := renderPlot(m.vp.Visible(), bounds, w, h)

	top, mid, bottom := yLabels(bounds)
	var b strings.Builder
	b.WriteString(warnStyle.Render("Waveform"))
	b.WriteString("\n")
	for i, r := range rows {
		label := ""
		switch i {
		case 0:
			label = top
		case len(rows) / 2:
			label = mid
		case len(rows) - 1:
			label = bottom
		}
		b.WriteString(hintStyle.Render(fmt.Sprintf("%*s", gutterWidth-1, label)))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(waveStyle.Render(r))
		b.WriteString("\n")
	}

	x0, xm, x1 := xLabels(bounds)
	gap := max((w-len(x0)-len(xm)-len(x1))/2, 1)
	b.WriteString(strings.Repeat(" ", gutterWidth))
	b.WriteString(hintStyle.Render(x0 + strings.Repeat(" ", gap) + xm + strings.Repeat(" ", gap) + x1))
	b.WriteString("  ")
	b.WriteString(subTitleStyle.Render("Time ") + warnStyle.Render("(sec)"))

	return panel(m.mode == modeVisualizer).Render(b.String())
}

func (m *Model) viewHelp() string {
	keys := [][2]string{
		{"esc", "quit"},
		{"tab", "toggle this help"},
		{"shift+↑", "parameters section"},
		{"shift+↓", "waveform section"},
		{"↑/↓", "move between fields"},
		{"←/→", "change coder / scroll waveform"},
		{"end", "jump to the end of the waveform"},
	}

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(hintStyle.Render(fmt.Sprintf("%-10s", k[0])))
		b.WriteString(textStyle.Render(k[1]))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Scheme returns the selected scheme.
func (m *Model) Scheme() coder.Scheme { return m.lc.Scheme() }

// Segments returns the waveform currently displayed.
func (m *Model) Segments() []signal.Segment { return m.segs }

// FieldError returns the validation error of a text field by label
// ("bits", "tb", "v", "duty"), or nil.
func (m *Model) FieldError(label string) error {
	for f, l := range fieldLabels {
		if l == label {
			return m.errs[f]
		}
	}

	return nil
}
