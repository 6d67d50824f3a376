// Package logging provides logger setup with optional file rotation.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds log output configuration.
type Config struct {
	Path       string // Log file path; empty writes to the fallback writer
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
	Compress   bool   // Compress old files
	Verbose    bool   // Emit debug records
}

// DefaultConfig returns sensible defaults for log rotation.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// NewRotatingWriter creates a log writer with rotation support.
func NewRotatingWriter(cfg Config) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// Level returns the minimum level for cfg.
func (c Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a structured logger that writes to the given writer.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup builds the logger described by cfg. Records go to a rotating file
// when cfg.Path is set, otherwise to fallback. The returned closer must be
// closed once logging is done.
func Setup(cfg Config, fallback io.Writer) (*slog.Logger, io.Closer) {
	if cfg.Path == "" {
		return NewLogger(fallback, cfg.Level()), nopCloser{}
	}
	w := NewRotatingWriter(cfg)
	return NewLogger(w, cfg.Level()), w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
