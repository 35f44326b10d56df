package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ieee0824/ctcfasterdecoder/config"
	"github.com/ieee0824/ctcfasterdecoder/decoder"
	"github.com/ieee0824/ctcfasterdecoder/graph"
	"github.com/ieee0824/ctcfasterdecoder/oracle"
	"github.com/ieee0824/ctcfasterdecoder/store"
)

var jobPath string

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Run a single decode job to completion and print the best path",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&jobPath, "job", "", "path to the YAML job description (required)")
	decodeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(c *cobra.Command, args []string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	job, err := config.Load(jobPath)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}

	logger := newLogger(job.LogLevel).With("component", "cmd.decode")
	sessionID := uuid.New().String()
	logger = logger.With("session_id", sessionID)

	g, err := graph.LoadVectorGraphJSONFile(job.GraphPath)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	oc, err := oracle.LoadMatrixOracleJSONFile(job.OraclePath)
	if err != nil {
		return fmt.Errorf("load oracle: %w", err)
	}

	d, err := decoder.NewDecoder(g, job.Decoder.ToDecoderConfig())
	if err != nil {
		return fmt.Errorf("construct decoder: %w", err)
	}

	startedAt := time.Now()
	logger.Info("starting decode", "graph_path", job.GraphPath, "oracle_path", job.OraclePath)

	d.InitDecoding()
	d.AdvanceDecoding(oc, job.MaxFrames)

	reachedFinal := d.ReachedFinal()
	var result decoder.Result
	ok := d.GetBestPath(&result, job.UseFinalProbs)

	logger.Info("decode finished",
		"num_frames_decoded", d.NumFramesDecoded(),
		"reached_final", reachedFinal,
		"has_path", ok,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)

	if !ok {
		fmt.Println("no path found: the frontier was empty at the end of decoding")
	} else {
		fmt.Printf("words:  %v\n", result.Words)
		fmt.Printf("phones: %v\n", result.Phones)
		fmt.Printf("total score: %g   lm score: %g\n", result.BestTotScore, result.BestLMScore)
	}

	if job.StorePath != "" {
		s, err := store.Open(job.StorePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		run := store.Run{
			SessionID:        sessionID,
			StartedAt:        startedAt,
			NumFramesDecoded: d.NumFramesDecoded(),
			ReachedFinal:     reachedFinal,
			Words:            result.Words,
			Phones:           result.Phones,
		}
		if ok {
			run.BestTotScore = result.BestTotScore
			run.BestLMScore = result.BestLMScore
		}
		if err := s.RecordRun(ctx, run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}

	return nil
}
