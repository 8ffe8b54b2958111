// Package logger configures the process-wide slog logger. CLI commands keep
// stdout for rendered output, so logs go to stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup returns a JSON slog.Logger writing to w at the given level.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// FromEnv builds the default CLI logger. The level comes from PFOB_LOG
// (debug, info, warn, error); anything else keeps the default of warn so
// normal command output stays clean.
func FromEnv() *slog.Logger {
	return Setup(os.Stderr, levelFromEnv(os.Getenv("PFOB_LOG")))
}

func levelFromEnv(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
