// SPDX-License-Identifier: MIT

package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/coder"
	"github.com/katalvlaran/linecode/signal"
	"go.uber.org/zap"
)

// field indexes the parameter form rows. fieldCoder is the selector; the
// others are text inputs.
type field int

const (
	fieldCoder field = iota
	fieldBits
	fieldTB
	fieldV
	fieldDuty

	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldCoder: "coder",
	fieldBits:  "bits",
	fieldTB:    "tb",
	fieldV:     "v",
	fieldDuty:  "duty",
}

const inputWidth = 40

func newInput(label, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.Width = inputWidth
	ti.SetValue(value)
	return ti
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// enabled reports whether f is shown for the current scheme.
func (m *Model) enabled(f field) bool {
	return f != fieldDuty || m.lc.Scheme().UsesDuty()
}

// moveFocus steps the form cursor by delta, skipping hidden rows.
func (m *Model) moveFocus(delta int) {
	next := m.focus
	for {
		next = field((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if m.enabled(next) {
			break
		}
	}
	m.setFocus(next)
}

func (m *Model) setFocus(f field) {
	for i := fieldBits; i < fieldCount; i++ {
		if i == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = f
}

// switchScheme rebuilds the coder for s, carrying over the current
// parameters. The amplitude magnitude is valid under both rules, so the
// constructor cannot reject it; revalidate then applies the typed values.
func (m *Model) switchScheme(s coder.Scheme) {
	lc, err := coder.New(s,
		coder.WithBitPeriod(m.lc.BitPeriod()),
		coder.WithAmplitude(math.Abs(m.lc.Amplitude())),
		coder.WithDuty(m.duty),
	)
	if err != nil {
		m.log.Warn("scheme switch rejected", zap.Stringer("scheme", s), zap.Error(err))
		return
	}
	m.lc = lc
	m.log.Debug("scheme selected", zap.Stringer("scheme", s))

	if !m.enabled(m.focus) {
		m.setFocus(fieldCoder)
	}
	m.revalidate()
}

// revalidate re-applies every text field and re-encodes.
func (m *Model) revalidate() {
	for f := fieldBits; f < fieldCount; f++ {
		m.apply(f)
	}
	m.encode()
}

// apply parses field f and pushes it into the coder. The field is marked
// invalid on failure and the coder keeps its previous value.
func (m *Model) apply(f field) {
	raw := m.inputs[f].Value()

	var err error
	switch f {
	case fieldBits:
		var bs []bits.Bit
		if bs, err = bits.Parse(strings.TrimSpace(raw)); err == nil {
			m.bits = bs
		}
	case fieldTB:
		var tb float64
		if tb, err = parseFloat(raw); err == nil {
			err = m.lc.SetBitPeriod(tb)
		}
	case fieldV:
		var v float64
		if v, err = parseFloat(raw); err == nil {
			err = m.lc.SetAmplitude(v)
		}
	case fieldDuty:
		var d float64
		if d, err = parseFloat(raw); err == nil {
			d, err = coder.CheckDuty(d)
		}
		if err == nil {
			m.duty = d
			if dc, ok := m.lc.(coder.DutyCoder); ok {
				err = dc.SetDuty(d)
			}
		}
	}

	m.errs[f] = err
	if err != nil {
		m.log.Debug("field rejected", zap.String("field", fieldLabels[f]), zap.Error(err))
	}
}

// encode refreshes the waveform from the last valid bits and parameters.
func (m *Model) encode() {
	m.segs = m.lc.Encode(m.bits)
	m.vp.SetPoints(signal.StepPoints(m.segs))
}
