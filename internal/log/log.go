// Package log provides categorized, leveled logging for gitplay. The TUI
// owns stdout, so log output goes to a file (or is discarded entirely when
// logging is disabled). Built on log/slog with a category attribute so a
// single file can be grep'd per subsystem.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Category identifies the subsystem emitting a log line.
type Category string

const (
	CatApp        Category = "app"
	CatConfig     Category = "config"
	CatDB         Category = "db"
	CatLessons    Category = "lessons"
	CatPlayground Category = "playground"
	CatTelemetry  Category = "telemetry"
	CatUI         Category = "ui"
)

var (
	mu      sync.Mutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// Init routes log output to the file at path at the given level ("debug",
// "info", "warn", "error"). The parent directory is created if needed.
// Before Init (or after a failed Init) all log calls are discarded.
func Init(path, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // G304: path comes from config
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return nil
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func with(cat Category, args []any) []any {
	return append([]any{"cat", string(cat)}, args...)
}

// Debug logs a debug-level message under cat with key/value pairs.
func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, with(cat, args)...)
}

// Info logs an info-level message under cat with key/value pairs.
func Info(cat Category, msg string, args ...any) {
	current().Info(msg, with(cat, args)...)
}

// Warn logs a warn-level message under cat with key/value pairs.
func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, with(cat, args)...)
}

// Error logs an error-level message under cat with key/value pairs.
func Error(cat Category, msg string, args ...any) {
	current().Error(msg, with(cat, args)...)
}

// ErrorErr logs an error-level message with the error attached as "error".
func ErrorErr(cat Category, msg string, err error, args ...any) {
	current().Error(msg, with(cat, append([]any{"error", err}, args...))...)
}
