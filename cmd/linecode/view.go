// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/linecode/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when view runs without an interactive terminal.
var ErrNotTerminal = errors.New("view: stdout is not a terminal")

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [bits]",
		Short: "Open the interactive waveform viewer",
		Long: `view opens a full-screen editor with a parameter form and a scrollable
waveform plot. Tab toggles help, Esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTerminal(os.Stdout.Fd()); err != nil {
				return err
			}

			initial := tui.DefaultBits
			if len(args) == 1 {
				initial = args[0]
			}

			lc, err := a.cfg.NewCoder()
			if err != nil {
				return err
			}
			model, err := tui.New(lc, initial, a.cfg.Duty, a.log)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("view: %w", err)
			}
			a.log.Info("viewer closed")

			return nil
		},
	}
}

func checkTerminal(fd uintptr) error {
	if !term.IsTerminal(int(fd)) {
		return ErrNotTerminal
	}

	return nil
}
