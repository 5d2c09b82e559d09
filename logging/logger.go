package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger instance. It discards output until Init is called.
	Logger = log.NewWithOptions(io.Discard, log.Options{})

	// logFile is the file handle for the log file
	logFile *os.File
)

// DefaultPath returns ~/.staffdir/logs/staffdir-YYYY-MM-DD.log.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	name := fmt.Sprintf("staffdir-%s.log", time.Now().Format("2006-01-02"))
	return filepath.Join(homeDir, ".staffdir", "logs", name), nil
}

// Init opens path for appending and sends all log output there.
// The terminal belongs to the TUI, so it never writes to stdout.
func Init(path, level string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f

	Logger = newLogger(f, level)
	Logger.Info("staffdir started")
	return nil
}

// InitWriter logs to w, used by the MCP servers which log to stderr.
func InitWriter(w io.Writer, level string) {
	Logger = newLogger(w, level)
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
		Prefix:          "staffdir",
	})
}

// Close closes the log file
func Close() {
	Logger.Info("staffdir shutting down")
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
