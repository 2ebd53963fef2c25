// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Format selects how command results are written.
type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatTable  Format = "table"
	FormatLevels Format = "levels"
)

// ErrBadFormat reports an unknown --output value.
var ErrBadFormat = errors.New("unknown output format")

// ParseFormat accepts json, pretty, table or levels.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatPretty, FormatTable, FormatLevels:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want json|pretty|table|levels)", ErrBadFormat, s)
	}
}

// tabular is implemented by results that can be shown as a table.
type tabular interface {
	header() []string
	rows() [][]string
}

// formatter writes results to a single destination.
type formatter struct {
	format Format
	w      io.Writer
}

func newFormatter(format Format, w io.Writer) *formatter {
	return &formatter{format: format, w: w}
}

// print dispatches on the configured format. Levels output is handled by
// the encode command itself; here it falls back to table.
func (f *formatter) print(v interface{}) error {
	switch f.format {
	case FormatJSON:
		return f.json(v, false)
	case FormatPretty:
		return f.json(v, true)
	default:
		t, ok := v.(tabular)
		if !ok {
			return f.json(v, true)
		}
		return f.table(t)
	}
}

func (f *formatter) json(v interface{}, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(data))

	return err
}

func (f *formatter) table(t tabular) error {
	data := pterm.TableData{t.header()}
	data = append(data, t.rows()...)

	out, err := pterm.DefaultTable.WithHasHeader(true).WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintln(f.w, out)

	return err
}
