package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/ctcfasterdecoder/store"
)

var (
	historyStorePath string
	historyLimit     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past decode runs recorded in a store",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyStorePath, "store", "", "path to the SQLite run store (required)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list, 0 for no limit")
	historyCmd.MarkFlagRequired("store")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(c *cobra.Command, args []string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := store.Open(historyStorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  frames=%d  final=%v  tot=%g  lm=%g  words=%v\n",
			r.SessionID, r.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
			r.NumFramesDecoded, r.ReachedFinal, r.BestTotScore, r.BestLMScore, r.Words)
	}
	return nil
}
