// Package logger provides the structured logger shared by the CLI and the
// editor session. The editor session logs to a timestamped file so the
// terminal stays free for command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is a charmbracelet logger that may own a log file.
type Logger struct {
	*log.Logger
	file *os.File
}

func newLogger(w io.Writer, debug, timestamps bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "pmrun",
		Level:           level,
		ReportTimestamp: timestamps,
	})
}

// New creates a logger writing to w. Debug lines are emitted only when debug is set.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{Logger: newLogger(w, debug, false)}
}

// NewFile creates a logger that writes to <dir>/logs/editor-<ts>.log.
func NewFile(dir string, debug bool) (*Logger, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	f, err := os.Create(filepath.Join(logsDir, fmt.Sprintf("editor-%s.log", ts)))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &Logger{Logger: newLogger(f, debug, true), file: f}, nil
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, false, false)}
}

// LogPath returns the path of the log file, or "" when not file-backed.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
