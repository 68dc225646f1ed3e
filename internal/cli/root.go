// Package cli implements the chipstitch command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	delimiter  string
}

// NewRootCmd builds the chipstitch command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "chipstitch",
		Short: "Detect and correct chip transitions in spectrometer data",
		Long: `chipstitch finds intensity steps where one detector chip's wavenumber
range ends and the next begins, and rescales every spectrum so that the
segments join into one continuous curve.

Input is a delimited table whose header names spectral columns by
wavenumber; other columns are passed through unchanged.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default ./chipstitch.yaml if present)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: console|json")
	pf.StringVar(&g.delimiter, "delimiter", "", `field delimiter: tab|comma|semicolon or a single character`)

	cmd.AddCommand(
		detectCmd(g),
		correctCmd(g),
		editCmd(g),
	)

	return cmd
}
