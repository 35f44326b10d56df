// Package store persists finished decode sessions to SQLite: one row per
// AdvanceDecoding-to-completion run, with its session id, frame count,
// best total/LM score, and decoded word/phone sequences. It is grounded
// on msto63-mDW's internal/bayes/store schema-on-init idiom
// (database/sql against github.com/mattn/go-sqlite3, CREATE TABLE IF NOT
// EXISTS on open) — cut down to the single table a decode-run history
// needs, since this repository never reintroduces the N-best/lattice
// output spec.md excludes.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one finished decode session.
type Run struct {
	SessionID        string
	StartedAt        time.Time
	NumFramesDecoded int
	ReachedFinal     bool
	BestTotScore     float64
	BestLMScore      float64
	Words            []int32
	Phones           []int32
}

// Store persists and queries decode Runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite-backed Store at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		session_id          TEXT PRIMARY KEY,
		started_at          DATETIME NOT NULL,
		num_frames_decoded  INTEGER NOT NULL,
		reached_final       INTEGER NOT NULL,
		best_tot_score      REAL NOT NULL,
		best_lm_score       REAL NOT NULL,
		words               TEXT NOT NULL,
		phones              TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun inserts a finished decode Run.
func (s *Store) RecordRun(ctx context.Context, r Run) error {
	wordsJSON, err := json.Marshal(r.Words)
	if err != nil {
		return fmt.Errorf("store: marshal words: %w", err)
	}
	phonesJSON, err := json.Marshal(r.Phones)
	if err != nil {
		return fmt.Errorf("store: marshal phones: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (session_id, started_at, num_frames_decoded, reached_final, best_tot_score, best_lm_score, words, phones)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.SessionID, r.StartedAt, r.NumFramesDecoded, r.ReachedFinal, r.BestTotScore, r.BestLMScore, string(wordsJSON), string(phonesJSON))
	if err != nil {
		return fmt.Errorf("store: insert run %s: %w", r.SessionID, err)
	}
	return nil
}

// ListRuns returns up to limit most recent runs, newest first. limit <= 0
// means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT session_id, started_at, num_frames_decoded, reached_final, best_tot_score, best_lm_score, words, phones FROM runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var wordsJSON, phonesJSON string
		if err := rows.Scan(&r.SessionID, &r.StartedAt, &r.NumFramesDecoded, &r.ReachedFinal, &r.BestTotScore, &r.BestLMScore, &wordsJSON, &phonesJSON); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(wordsJSON), &r.Words); err != nil {
			return nil, fmt.Errorf("store: unmarshal words for %s: %w", r.SessionID, err)
		}
		if err := json.Unmarshal([]byte(phonesJSON), &r.Phones); err != nil {
			return nil, fmt.Errorf("store: unmarshal phones for %s: %w", r.SessionID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
