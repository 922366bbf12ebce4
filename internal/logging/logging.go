// Package logging builds the slog logger used by every command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mj1618/autosave-cli/internal/config"
)

// Result holds the configured logger and the file behind it, if any.
type Result struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if one was opened.
func (r *Result) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// Setup creates a logger from the log settings. With no file configured it
// writes to stderr; otherwise to a file rotated by lumberjack. The file's
// directory must exist.
func Setup(cfg config.LogConfig, level slog.Leveler) (*Result, error) {
	if cfg.File == "" {
		return &Result{Logger: New(os.Stderr, cfg.Format, level)}, nil
	}

	dir := filepath.Dir(cfg.File)
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("log directory: %s is not a directory", dir)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return &Result{
		Logger:   New(w, cfg.Format, level),
		LogFile:  w,
		FilePath: cfg.File,
	}, nil
}

// New creates a logger writing to w. Format "json" selects the JSON
// handler; anything else the text handler.
func New(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
