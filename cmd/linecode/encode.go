// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linecode/bits"
	"github.com/katalvlaran/linecode/coder"
	"github.com/katalvlaran/linecode/pattern"
	"github.com/katalvlaran/linecode/signal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// ErrNoInput is returned when neither a bit string nor --pattern is given.
	ErrNoInput = errors.New("encode: give a bit string or --pattern")
	// ErrTwoInputs is returned when both a bit string and --pattern are given.
	ErrTwoInputs = errors.New("encode: bit string and --pattern are exclusive")
)

// encodeResult is the structured output of the encode command.
type encodeResult struct {
	Scheme    string           `json:"scheme"`
	BitPeriod float64          `json:"bit_period"`
	Amplitude float64          `json:"amplitude"`
	Duty      *float64         `json:"duty,omitempty"`
	Bits      string           `json:"bits"`
	Segments  []signal.Segment `json:"segments"`
}

func (r encodeResult) header() []string {
	return []string{"#", "bit", "start", "end", "level"}
}

func (r encodeResult) rows() [][]string {
	out := make([][]string, 0, len(r.Segments))
	for i, s := range r.Segments {
		// small bias keeps boundaries like 3·0.1 in the right slot
		idx := int(math.Floor(s.Start/r.BitPeriod + 1e-9))
		bit := ""
		if idx >= 0 && idx < len(r.Bits) {
			bit = string(r.Bits[idx])
		}
		out = append(out, []string{
			strconv.Itoa(i),
			bit,
			fmtNum(s.Start),
			fmtNum(s.End),
			fmtNum(s.Level),
		})
	}

	return out
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type encodeFlags struct {
	pattern string
	length  int
	seed    int64
	density float64
	output  string
}

func (a *app) encodeCmd() *cobra.Command {
	var fl encodeFlags

	cmd := &cobra.Command{
		Use:   "encode [bits]",
		Short: "Encode a bit string into waveform segments",
		Example: `  linecode encode 10000110 --coder hdb3
  linecode encode --pattern prbs7 --length 32 -c mlt3 -o table
  linecode encode 1011 -c rz --duty 0.25 -o levels`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(fl.output)
			if err != nil {
				return err
			}
			in, err := fl.input(args)
			if err != nil {
				return err
			}

			lc, err := a.cfg.NewCoder()
			if err != nil {
				return err
			}
			res := a.encode(lc, in)

			if format == FormatLevels {
				return printLevels(cmd, res.Segments)
			}

			return newFormatter(format, cmd.OutOrStdout()).print(res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.pattern, "pattern", "p", "", "generate input: "+strings.Join(pattern.Names(), "|"))
	f.IntVarP(&fl.length, "length", "n", 32, "generated pattern length in bits")
	f.Int64Var(&fl.seed, "seed", pattern.DefaultSeed, "seed for the random pattern")
	f.Float64Var(&fl.density, "density", 0.5, "probability of a one in the random pattern")
	f.StringVarP(&fl.output, "output", "o", string(FormatJSON), "output format: json|pretty|table|levels")

	return cmd
}

// input resolves the bit sequence from the positional argument or the
// pattern flags.
func (fl encodeFlags) input(args []string) ([]bits.Bit, error) {
	switch {
	case len(args) == 1 && fl.pattern != "":
		return nil, ErrTwoInputs
	case len(args) == 1:
		return bits.Parse(args[0])
	case fl.pattern != "":
		return pattern.Named(fl.pattern, fl.length,
			pattern.WithSeed(fl.seed),
			pattern.WithDensity(fl.density),
		)
	default:
		return nil, ErrNoInput
	}
}

func (a *app) encode(lc coder.LineCoder, in []bits.Bit) encodeResult {
	segs := lc.Encode(in)
	res := encodeResult{
		Scheme:    lc.Scheme().ID(),
		BitPeriod: lc.BitPeriod(),
		Amplitude: lc.Amplitude(),
		Bits:      bits.Format(in),
		Segments:  segs,
	}
	if dc, ok := lc.(coder.DutyCoder); ok {
		d := dc.Duty()
		res.Duty = &d
	}

	a.log.Info("encoded",
		zap.String("coder", res.Scheme),
		zap.Int("bits", len(in)),
		zap.Int("segments", len(segs)),
		zap.Int("transitions", signal.Transitions(segs)),
	)

	return res
}

func printLevels(cmd *cobra.Command, segs []signal.Segment) error {
	levels := signal.Levels(segs)
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmtNum(l)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))

	return err
}
