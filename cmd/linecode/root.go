// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/linecode/coder"
	"github.com/katalvlaran/linecode/internal/config"
	"github.com/katalvlaran/linecode/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	closeLog func() error
}

// newApp resolves defaults and environment; flags bound in rootCmd
// override them during parsing.
func newApp() *app {
	return &app{
		cfg: config.Load(),
		log: zap.NewNop(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linecode",
		Short: "Encode bit sequences with line codes",
		Long: `linecode turns bit strings into piecewise-constant waveforms using
NRZ-L, NRZI, RZ, Manchester (IEEE 802.3), AMI, MLT-3 and HDB3.

Parameters are validated up front: the bit period must be > 0, the
amplitude > 0 (or ≠ 0 for NRZI, AMI and HDB3, where its sign selects the
initial polarity) and the RZ duty in (0, 1].`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.cfg.Coder, "coder", "c", a.cfg.Coder, "line code (see 'linecode coders')")
	f.Float64Var(&a.cfg.BitPeriod, "tb", a.cfg.BitPeriod, "bit period in seconds")
	f.Float64VarP(&a.cfg.Amplitude, "amplitude", "v", a.cfg.Amplitude, "signal amplitude")
	f.Float64Var(&a.cfg.Duty, "duty", a.cfg.Duty, "RZ pulse fraction of the bit period")
	f.StringVar(&a.cfg.DataDir, "data-dir", a.cfg.DataDir, "directory holding the log file (env "+config.EnvDataDir+")")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug|info|warn|error (env "+config.EnvLog+")")

	root.AddCommand(a.encodeCmd(), a.codersCmd(), a.viewCmd())

	return root
}

// setup validates the configuration and installs the file logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := a.cfg.Level()

	logger, closeFn, err := logging.New(a.cfg.LogPath(), lvl)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	a.log, a.closeLog = logger, closeFn
	coder.SetLogger(logger)

	a.log.Debug("command started",
		zap.String("command", cmd.Name()),
		zap.String("coder", a.cfg.Coder),
		zap.Float64("tb", a.cfg.BitPeriod),
		zap.Float64("v", a.cfg.Amplitude),
	)

	return nil
}

func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	coder.SetLogger(nil)
	_ = a.closeLog()
	a.closeLog = nil
}
