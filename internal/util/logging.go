// Package util provides common utilities including logging setup,
// directory helpers and input validation.
package util

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SetupLogger returns a text logger writing to w. Debug records are kept
// only when verbose is set.
func SetupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenLogFile opens path for appending, creating its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// DiscardLogger drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogError logs an error with context if it is non-nil.
func LogError(logger *slog.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, slog.String("error", err.Error()))
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(logger *slog.Logger, context string, err error) {
	if err != nil {
		LogError(logger, context, err)
		os.Exit(1)
	}
}
