package logger

import "context"

// noopLogger discards everything. Used in tests and as a safe default when a
// component is wired without a logger.
type noopLogger struct{}

// NewNoOpLogger returns a Logger that discards all output.
func NewNoOpLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, fields ...Field)      {}
func (noopLogger) Info(msg string, fields ...Field)       {}
func (noopLogger) Warn(msg string, fields ...Field)       {}
func (noopLogger) Error(msg string, fields ...Field)      {}
func (noopLogger) With(fields ...Field) Logger            { return noopLogger{} }
func (noopLogger) WithContext(ctx context.Context) Logger { return noopLogger{} }
func (noopLogger) Level() Level                           { return LevelError }
