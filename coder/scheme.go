// SPDX-License-Identifier: MIT
// Package: linecode/coder
//
// scheme.go — the Scheme selector and the scheme-driven factory.
//
// The selector order matches the interactive viewer: NRZ-L, NRZI, RZ,
// Manchester, HDB3, MLT-3, AMI. Next/Prev cycle through it.

package coder

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Scheme identifies a line coding scheme.
type Scheme int

// Supported schemes, in selector order.
const (
	SchemeNRZL Scheme = iota
	SchemeNRZI
	SchemeRZ
	SchemeManchester
	SchemeHDB3
	SchemeMLT3
	SchemeAMI

	schemeCount
)

type schemeInfo struct {
	id      string // short, flag-friendly identifier
	display string // human-readable name
	rule    AmplitudeRule
	duty    bool // pulse fraction is configurable
}

var schemeTable = [schemeCount]schemeInfo{
	SchemeNRZL:       {id: "nrzl", display: "NRZ-L", rule: Closed},
	SchemeNRZI:       {id: "nrzi", display: "NRZI", rule: Open},
	SchemeRZ:         {id: "rz", display: "RZ", rule: Closed, duty: true},
	SchemeManchester: {id: "manchester", display: "Manchester 802.3", rule: Closed},
	SchemeHDB3:       {id: "hdb3", display: "HDB3", rule: Open},
	SchemeMLT3:       {id: "mlt3", display: "MLT-3", rule: Closed},
	SchemeAMI:        {id: "ami", display: "AMI", rule: Open},
}

// Schemes returns every supported scheme in selector order.
func Schemes() []Scheme {
	out := make([]Scheme, schemeCount)
	for i := range out {
		out[i] = Scheme(i)
	}

	return out
}

// Valid reports whether s names a supported scheme.
func (s Scheme) Valid() bool {
	return s >= 0 && s < schemeCount
}

// String returns the display name, e.g. "Manchester 802.3".
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return schemeTable[s].display
}

// ID returns the short identifier, e.g. "manchester".
func (s Scheme) ID() string {
	if !s.Valid() {
		return fmt.Sprintf("scheme%d", int(s))
	}

	return schemeTable[s].id
}

// AmplitudeRule returns the amplitude contract enforced by the scheme.
func (s Scheme) AmplitudeRule() AmplitudeRule {
	if !s.Valid() {
		return Closed
	}

	return schemeTable[s].rule
}

// UsesDuty reports whether the scheme accepts a configurable duty fraction.
func (s Scheme) UsesDuty() bool {
	return s.Valid() && schemeTable[s].duty
}

// Next returns the following scheme, wrapping around.
func (s Scheme) Next() Scheme {
	return Scheme((int(s) + 1) % int(schemeCount))
}

// Prev returns the preceding scheme, wrapping around.
func (s Scheme) Prev() Scheme {
	return Scheme((int(s) + int(schemeCount) - 1) % int(schemeCount))
}

// ParseScheme resolves a scheme from its ID or display name. Matching is
// case-insensitive and ignores punctuation and spaces, so "NRZ-L", "nrzl"
// and "Manchester 802.3" all resolve.
func ParseScheme(name string) (Scheme, error) {
	key := normalize(name)
	if key != "" {
		for i, info := range schemeTable {
			if key == info.id || key == normalize(info.display) {
				return Scheme(i), nil
			}
		}
	}

	return 0, fmt.Errorf("ParseScheme(%q): %w", name, ErrUnknownCoder)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// New constructs the coder for scheme with parameters resolved from opts
// (DefaultBitPeriod, DefaultAmplitude, DefaultDuty when absent).
// Schemes without a configurable duty ignore WithDuty.
//
// Errors: ErrUnknownCoder, or the validation sentinel of the first
// rejected parameter, wrapped with "New(<id>)".
func New(scheme Scheme, opts ...Option) (LineCoder, error) {
	cfg := newConfig(opts...)

	var (
		lc  LineCoder
		err error
	)
	switch scheme {
	case SchemeNRZL:
		lc, err = asCoder(NewNRZL(cfg.bitPeriod, cfg.amplitude))
	case SchemeNRZI:
		lc, err = asCoder(NewNRZI(cfg.bitPeriod, cfg.amplitude))
	case SchemeRZ:
		lc, err = asCoder(NewRZ(cfg.bitPeriod, cfg.amplitude, cfg.duty))
	case SchemeManchester:
		lc, err = asCoder(NewManchester(cfg.bitPeriod, cfg.amplitude))
	case SchemeHDB3:
		lc, err = asCoder(NewHDB3(cfg.bitPeriod, cfg.amplitude))
	case SchemeMLT3:
		lc, err = asCoder(NewMLT3(cfg.bitPeriod, cfg.amplitude))
	case SchemeAMI:
		lc, err = asCoder(NewAMI(cfg.bitPeriod, cfg.amplitude))
	default:
		return nil, fmt.Errorf("New(%s): %w", scheme.ID(), ErrUnknownCoder)
	}
	if err != nil {
		Logger().Debug("coder rejected", zap.Stringer("scheme", scheme), zap.Error(err))
		return nil, fmt.Errorf("New(%s): %w", scheme.ID(), err)
	}

	Logger().Debug("coder constructed",
		zap.Stringer("scheme", scheme),
		zap.Float64("tb", lc.BitPeriod()),
		zap.Float64("v", lc.Amplitude()),
	)

	return lc, nil
}

// asCoder converts a concrete constructor result into the interface without
// leaking a typed nil on failure.
func asCoder[T LineCoder](c T, err error) (LineCoder, error) {
	if err != nil {
		return nil, err
	}

	return c, nil
}
