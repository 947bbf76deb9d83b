// Package logger writes keybind's structured debug log.
//
// The terminal belongs to the TUI, so records go to a per-process file under
// $XDG_STATE_HOME/keybind instead of stderr. Subsystems log through
// Component loggers so every record names where it came from.
package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLogLevel is returned for a level name other than debug, info,
// warn or error.
var ErrInvalidLogLevel = errors.New("invalid log level")

const (
	appName = "keybind"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger is a leveled slog text logger bound to one session file.
type Logger struct {
	log  *slog.Logger
	file *os.File
}

// New opens the session log in StateDir. An empty level disables logging
// and touches nothing on disk.
func New(level string) (*Logger, error) {
	if level == "" {
		return Discard(), nil
	}

	dir, err := StateDir()
	if err != nil {
		return nil, err
	}

	return Open(dir, level)
}

// StateDir returns the directory session logs are written to.
func StateDir() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateDir, appName), nil
}

// Open creates dir if needed and starts keybind-<pid>.log inside it. A file
// left by an earlier process with the same pid is truncated.
func Open(dir, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%d.log", appName, os.Getpid()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	l := &Logger{
		log:  slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: lvl})),
		file: file,
	}
	l.Info("keybind started", "pid", os.Getpid(), "level", lvl.String(), "log_path", path)

	return l, nil
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{log: slog.New(slog.DiscardHandler)}
}

// Component returns a Logger whose records carry component=name.
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// With returns a Logger that adds args to every record. It shares the
// parent's file, so only the parent is closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...)}
}

// Path returns the session file, or "" when logging is disabled.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the session file.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

func parseLevel(name string) (slog.Level, error) {
	if lvl, ok := levels[strings.ToLower(name)]; ok {
		return lvl, nil
	}
	return 0, fmt.Errorf("%w: %q (use debug, info, warn or error)", ErrInvalidLogLevel, name)
}
