// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Field names shared by load warnings.
const (
	FieldFile   = "file"
	FieldLine   = "line"
	FieldRaw    = "raw"
	FieldReason = "reason"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a text logger writing to w. quiet raises the level to error
// regardless of level. An unknown level falls back to info.
func New(w io.Writer, level string, quiet bool) *slog.Logger {
	lvl, _ := ParseLevel(level)
	if quiet {
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, level string, quiet bool) *slog.Logger {
	logger := New(w, level, quiet)
	slog.SetDefault(logger)
	return logger
}
