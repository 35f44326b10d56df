package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ieee0824/ctcfasterdecoder/store"
)

func TestRunHistory_ListsRecordedRuns(t *testing.T) {
	dir := t.TempDir()
	historyStorePath = filepath.Join(dir, "runs.db")
	historyLimit = 20

	s, err := store.Open(historyStorePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	if err := s.RecordRun(context.Background(), store.Run{SessionID: "abc", Words: []int32{11}, Phones: []int32{1}}); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	s.Close()

	if err := runHistory(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runHistory: %v", err)
	}
}

func TestRunHistory_CreatesIntermediateDirectories(t *testing.T) {
	dir := t.TempDir()
	historyStorePath = filepath.Join(dir, "nested", "missing", "runs.db")
	historyLimit = 20

	if err := runHistory(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runHistory should create intermediate directories: %v", err)
	}
}
