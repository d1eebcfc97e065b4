// Package logger is the structured logging facade for the analytics API.
// The backend is slog; handlers and services only see the Logger interface,
// so the backend can be swapped without touching call sites.
package logger

import (
	"context"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel converts a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the logging interface the rest of the service depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child Logger with the fields added to every entry.
	With(fields ...Field) Logger
	// WithContext returns a child Logger carrying the context's request ID.
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config holds the logging settings exposed through the service config.
type Config struct {
	Level Level
	// Format is "json" or "text".
	Format string
}

var defaultLogger Logger

// SetDefault installs the process-wide logger, used by FromContext when a
// request-scoped logger is absent.
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the process-wide logger, initializing a JSON slog logger
// at info level on first use.
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = NewSlogLogger(Config{Level: LevelInfo})
	}
	return defaultLogger
}
