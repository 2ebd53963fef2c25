// SPDX-License-Identifier: MIT

// Command linecode encodes bit sequences with classic line codes and shows
// the resulting waveforms, either as structured output or in an
// interactive terminal viewer.
//
// Usage:
//
//	linecode encode 10000110 --coder hdb3 --amplitude -1
//	linecode encode --pattern prbs7 --length 64 -o table
//	linecode coders
//	linecode view 0100110000100001 --coder mlt3
//
// The data directory ($LINECODE_DATA_DIR, default ~/.local/share/linecode)
// holds the log file; $LINECODE_LOG sets the log level.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the command tree, executes it with args and releases the log
// file whatever the outcome.
func run(args []string, stdout, stderr io.Writer) error {
	a := newApp()
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}
