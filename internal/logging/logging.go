// Package logging sets up the application's zerolog logger.
//
// The terminal belongs to the UI, so logs are written to a file under the
// XDG state directory rather than to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "burrow"
	logFileName = "burrow.log"
)

// Config holds logging configuration.
type Config struct {
	Level string // debug, info, warn, error
	Path  string // log file; empty means the XDG state location
}

// Logger wraps a zerolog.Logger together with the file it writes to.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// Init opens the log file and returns a configured logger.
func Init(cfg Config) (*Logger, error) {
	path := cfg.Path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		Logger: New(f, cfg.Level),
		closer: f,
	}, nil
}

// New builds a logger writing JSON lines to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a config level name to a zerolog level. Unknown or empty
// names select info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// DefaultPath returns the log file location under XDG_STATE_HOME.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, logFileName))
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
