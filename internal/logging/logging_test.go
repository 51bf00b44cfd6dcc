package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestQuietSuppressesWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", true)
	logger.Warn("skipped row", FieldLine, 3)
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
	logger.Error("save failed")
	if !strings.Contains(buf.String(), "save failed") {
		t.Fatalf("error not logged: %q", buf.String())
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", false)
	logger.Info("hidden")
	logger.Warn("shown", FieldFile, "expenses.csv")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "file=expenses.csv") {
		t.Fatalf("output = %q", out)
	}
}
