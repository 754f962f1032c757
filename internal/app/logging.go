package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/gridedit/internal/config"
)

// ParseLogLevel parses a level name. Unknown names yield Info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns l with the component attribute set.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return l.With("component", component)
}

// NewLogger builds the process logger from cfg. The terminal belongs to the
// editor, so logs go to cfg.File; without a file they are discarded. The
// returned function closes the file.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: ParseLogLevel(cfg.Level)})
	return slog.New(h), f.Close, nil
}
