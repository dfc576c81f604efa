package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vmunix/healarr/internal/config"
)

// setupLogger builds the process logger. When file logging is enabled the
// log file is truncated at startup and every line is written to both
// stdout and the file.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level: %q", cfg.Level)
	}

	var w io.Writer = os.Stdout
	closer := func() {}
	if cfg.Enabled {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, f)
		closer = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}
