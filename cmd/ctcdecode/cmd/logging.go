package cmd

import (
	"log/slog"
	"os"
)

// newLogger builds the process logger, following the telemetry idiom
// used elsewhere in the pack: a *slog.Logger defaulting to info level,
// dropped to debug when --verbose is set or a job requests it.
func newLogger(levelName string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else {
		switch levelName {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
