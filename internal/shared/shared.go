// package shared defines shared helpers
package shared

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// NewFileLogger creates a [log.Logger] that appends to the file at path, creating parent directories as needed.
//
// Used by interactive modes so log lines do not interleave with rendered output.
// The caller owns the returned [io.Closer] for the log file.
func NewFileLogger(path string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewLogger(f), f, nil
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// ParseLogLevel converts a config or env level name into a [log.Level].
//
// Empty strings map to [log.InfoLevel].
func ParseLogLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.InfoLevel, nil
	}

	ll, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	return ll, nil
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}
