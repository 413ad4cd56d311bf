package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nwalden/bigclock/internal/config"
)

func TestSetupDebugLogger_WritesToFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "bigclock-debug.log")

	result := SetupDebugLogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	if result.FilePath != logPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, logPath)
	}

	result.Logger.Info("test message", "key", "value")
	_ = result.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !strings.Contains(string(content), "test message") {
		t.Errorf("log file should contain 'test message', got: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Errorf("log file should contain key=value, got: %s", content)
	}
}

func TestSetupDebugLogger_DoesNotWriteToStderr(t *testing.T) {
	// Stderr output would corrupt the raw-mode display, so the debug
	// logger must only ever touch its file.
	tmpDir := t.TempDir()

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	result := SetupDebugLogger(filepath.Join(tmpDir, "debug.log"), slog.LevelInfo, config.Default().LogRotation)
	result.Logger.Info("this should not appear on stderr")
	_ = result.Close()

	_ = w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	if buf.Len() > 0 {
		t.Errorf("debug logger wrote to stderr: %s", buf.String())
	}
}

func TestSetupDebugLoggerWithWriter_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	logger := SetupDebugLoggerWithWriter(&buf, slog.LevelInfo)
	logger.Info("test message", "foo", "bar")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("output should contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"foo":"bar"`) {
		t.Errorf("output should contain foo=bar, got: %s", output)
	}
}

func TestSessionLogger_NoPathDiscardsWithoutTouchingStderr(t *testing.T) {
	// A plain interactive run carries no --debug-log; its start and stop
	// log lines must not land on the user's screen.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	result := SessionLogger("", slog.LevelInfo, config.Default().LogRotation)
	result.Logger.Info("bigclock starting", "mode", "clock")
	result.Logger.Info("bigclock stopped", "mode", "clock")
	_ = result.Close()

	_ = w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	if buf.Len() > 0 {
		t.Errorf("session logger without a path wrote to stderr: %s", buf.String())
	}
}

func TestSessionLogger_PathUsesDebugFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bigclock-debug.log")

	result := SessionLogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	result.Logger.Info("bigclock starting")
	_ = result.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "bigclock starting") {
		t.Errorf("debug file should contain the start line, got: %s", content)
	}
}

func TestSetupDebugLogger_AppendsToExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "bigclock-debug.log")

	if err := os.WriteFile(logPath, []byte("existing content\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result := SetupDebugLogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	result.Logger.Info("new message")
	_ = result.Close()

	content, _ := os.ReadFile(logPath)
	if !strings.Contains(string(content), "existing content") {
		t.Error("should preserve existing content")
	}
	if !strings.Contains(string(content), "new message") {
		t.Error("should append new message")
	}
}

func TestSetupDebugLogger_RespectsLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "bigclock-debug.log")

	result := SetupDebugLogger(logPath, slog.LevelWarn, config.Default().LogRotation)
	result.Logger.Info("info message")
	result.Logger.Warn("warn message")
	_ = result.Close()

	content, _ := os.ReadFile(logPath)
	contentStr := string(content)

	if strings.Contains(contentStr, "info message") {
		t.Error("INFO message should be filtered out at WARN level")
	}
	if !strings.Contains(contentStr, "warn message") {
		t.Error("WARN message should appear")
	}
}
