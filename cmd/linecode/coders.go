// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/linecode/coder"
	"github.com/spf13/cobra"
)

// coderInfo describes one scheme in the coders listing.
type coderInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amplitude string `json:"amplitude"`
	Duty      bool   `json:"duty"`
}

type coderList []coderInfo

func (l coderList) header() []string {
	return []string{"id", "name", "amplitude", "duty"}
}

func (l coderList) rows() [][]string {
	out := make([][]string, 0, len(l))
	for _, c := range l {
		duty := "-"
		if c.Duty {
			duty = "yes"
		}
		out = append(out, []string{c.ID, c.Name, c.Amplitude, duty})
	}

	return out
}

func listCoders() coderList {
	schemes := coder.Schemes()
	out := make(coderList, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, coderInfo{
			ID:        s.ID(),
			Name:      s.String(),
			Amplitude: s.AmplitudeRule().String(),
			Duty:      s.UsesDuty(),
		})
	}

	return out
}

func (a *app) codersCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "coders",
		Short: "List the available line codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ParseFormat(output)
			if err != nil {
				return err
			}

			return newFormatter(format, cmd.OutOrStdout()).print(listCoders())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(FormatTable), "output format: json|pretty|table")

	return cmd
}
