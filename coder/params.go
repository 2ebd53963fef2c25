// SPDX-License-Identifier: MIT

package coder

import (
	"fmt"

	"github.com/katalvlaran/linecode/signal"
	"go.uber.org/zap"
)

// params is the validated parameter record embedded by every coder.
// It provides the Scheme/BitPeriod/Amplitude accessors and the shared
// SetBitPeriod/SetAmplitude hooks.
type params struct {
	scheme Scheme
	rule   AmplitudeRule
	tb     float64
	v      float64
}

func newParams(scheme Scheme, rule AmplitudeRule, tb, v float64) (params, error) {
	tb, err := CheckBitPeriod(tb)
	if err != nil {
		return params{}, err
	}
	v, err = rule.Check(v)
	if err != nil {
		return params{}, err
	}

	return params{scheme: scheme, rule: rule, tb: tb, v: v}, nil
}

// Scheme identifies the coding scheme.
func (p *params) Scheme() Scheme { return p.scheme }

// BitPeriod returns the current bit period.
func (p *params) BitPeriod() float64 { return p.tb }

// Amplitude returns the current amplitude.
func (p *params) Amplitude() float64 { return p.v }

// AmplitudeRule returns the amplitude contract of the scheme.
func (p *params) AmplitudeRule() AmplitudeRule { return p.rule }

// SetBitPeriod replaces the bit period, keeping the old one on failure.
func (p *params) SetBitPeriod(tb float64) error {
	tb, err := CheckBitPeriod(tb)
	if err != nil {
		Logger().Debug("bit period rejected", zap.Stringer("scheme", p.scheme), zap.Error(err))
		return fmt.Errorf("%s.SetBitPeriod: %w", p.scheme.ID(), err)
	}
	p.tb = tb

	return nil
}

// SetAmplitude replaces the amplitude, keeping the old one on failure.
func (p *params) SetAmplitude(v float64) error {
	v, err := p.rule.Check(v)
	if err != nil {
		Logger().Debug("amplitude rejected", zap.Stringer("scheme", p.scheme), zap.Error(err))
		return fmt.Errorf("%s.SetAmplitude: %w", p.scheme.ID(), err)
	}
	p.v = v

	return nil
}

// timeline lays segments out on a running clock. Spans whose width is not
// positive after floating-point evaluation are dropped, but the clock still
// advances by a full bit period.
type timeline struct {
	t    float64
	segs []signal.Segment
}

func newTimeline(capacity int) *timeline {
	return &timeline{segs: make([]signal.Segment, 0, capacity)}
}

// emit appends [from, to) at level when the span is non-degenerate.
func (tl *timeline) emit(from, to, level float64) {
	if to > from {
		tl.segs = append(tl.segs, signal.NewSegment(from, to, level))
	}
}

// slot holds level for one whole bit period.
func (tl *timeline) slot(tb, level float64) {
	tl.emit(tl.t, tl.t+tb, level)
	tl.t += tb
}

// split holds first for frac·tb, then second for the rest of the bit period.
func (tl *timeline) split(tb, frac, first, second float64) {
	mid, end := tl.t+tb*frac, tl.t+tb
	tl.emit(tl.t, mid, first)
	tl.emit(mid, end, second)
	tl.t += tb
}

func (tl *timeline) segments() []signal.Segment {
	return tl.segs
}
