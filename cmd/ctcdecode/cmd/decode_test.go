package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

const testGraphJSON = `{
  "start": 0,
  "states": [
    {"arcs": [{"input": 1, "output": 11, "dest": 1, "weight": 1.0}], "final": false},
    {"arcs": [], "final": true}
  ]
}`

const testOracleJSON = `{
  "labels": [99, 1],
  "block_label": 99,
  "log_likelihoods": [[-100.0, 0.0]]
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunDecode_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeTestFile(t, dir, "graph.json", testGraphJSON)
	oraclePath := writeTestFile(t, dir, "oracle.json", testOracleJSON)
	storePath := filepath.Join(dir, "runs.db")

	jobYAML := "graph_path: " + graphPath + "\n" +
		"oracle_path: " + oraclePath + "\n" +
		"store_path: " + storePath + "\n" +
		"use_final_probs: true\n"
	jobPath = writeTestFile(t, dir, "job.yaml", jobYAML)

	if err := runDecode(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runDecode: %v", err)
	}

	if _, err := os.Stat(storePath); err != nil {
		t.Fatalf("expected a store database to be created: %v", err)
	}
}
