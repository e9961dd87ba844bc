package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "debugsink",
	Short: "debugsink is a bench tool for the debugsink trace facility.",
	Long: `debugsink emits values through the same gated debug sink the firmware uses,
to stdout or to an SPI attached serial bridge, so output formatting can be
checked on the bench.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
