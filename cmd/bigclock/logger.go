package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nwalden/bigclock/internal/config"
)

// DebugLoggerResult contains the results of setting up file-backed logging.
type DebugLoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *DebugLoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupDebugLogger creates a logger that writes to a rotating file instead of
// stderr. Stderr output while the terminal is in raw mode would corrupt the
// display, so all logging goes through this file.
// Uses lumberjack for automatic log rotation based on the provided config.
func SetupDebugLogger(path string, level slog.Leveler, rotationCfg config.LogRotationConfig) *DebugLoggerResult {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))

	return &DebugLoggerResult{
		Logger:   logger,
		LogFile:  writer,
		FilePath: path,
	}
}

// SetupDebugLoggerWithWriter creates a logger that writes to the given writer.
// This is useful for testing where we want to capture the output.
func SetupDebugLoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SessionLogger returns the logger used while the display runs: the rotating
// debug file when a path is given, otherwise a logger that discards
// everything. Nothing may reach stderr once the terminal is in raw mode.
func SessionLogger(path string, level slog.Leveler, rotationCfg config.LogRotationConfig) *DebugLoggerResult {
	if path == "" {
		return &DebugLoggerResult{Logger: SetupDebugLoggerWithWriter(io.Discard, level)}
	}
	return SetupDebugLogger(path, level, rotationCfg)
}
