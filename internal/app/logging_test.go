package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/gridedit/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gridedit.log")
	logger, closeLog, err := NewLogger(config.LogConfig{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	WithComponent(logger, "editor").Warn("flush changes", "events", 2)
	logger.Info("hidden")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "component=editor") || !strings.Contains(out, "events=2") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("info message written at warn level")
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, closeLog, err := NewLogger(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger without a file should discard everything")
	}
	if err := closeLog(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
