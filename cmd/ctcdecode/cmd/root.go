package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ctcdecode",
	Short: "Run and inspect CTC beam-search decode jobs",
	Long: `ctcdecode drives the CTC faster-decoder core over a job
description: a graph, an acoustic oracle, and a set of pruning
parameters. When a job sets a store path, it records each finished
run so past decodes can be inspected later.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
