// Package logger provides leveled diagnostic logging for the taskmgr CLI.
// Messages go to stderr so they never mix with command output. Only
// warnings and errors are shown unless verbose mode (--verbose) or a lower
// log.level is configured.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

const prefix = "taskmgr"

var (
	mu      sync.RWMutex
	verbose bool
	level   = log.WarnLevel
	output  io.Writer = os.Stderr
	std               = newLogger(output, level)
)

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          prefix,
	})
}

// rebuild recreates the logger from current state (caller must hold lock).
func rebuild() {
	lvl := level
	if verbose {
		lvl = log.DebugLevel
	}
	std = newLogger(output, lvl)
}

// SetVerbose enables or disables verbose logging.
// Verbose mode logs at debug level regardless of SetLevel.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level from its name (debug, info, warn, error).
// Unknown names fall back to warn.
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(name)
	rebuild()
}

// ParseLevel parses a level name. Unknown names map to warn.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Debugf(format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Infof(format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Warnf(format, args...)
}

// Error logs a formatted message at error level.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Errorf(format, args...)
}
