// Package logger defines the logging interface used throughout stmtkit.
// It provides a contract for structured logging implementations.
package logger

import "time"

// Logger defines the contract for structured logging.
// It provides methods for creating log events at different severity levels and for attaching fields.
type Logger interface {
	Info() LogEvent
	Error() LogEvent
	Debug() LogEvent
	Warn() LogEvent
	Fatal() LogEvent
	WithFields(fields map[string]any) Logger
}

// LogEvent represents a structured log event that can be built with fields and sent.
type LogEvent interface {
	Msg(msg string)
	Msgf(format string, args ...any)
	Err(err error) LogEvent
	Str(key, value string) LogEvent
	Strs(key string, values []string) LogEvent
	Int(key string, value int) LogEvent
	Uint64(key string, value uint64) LogEvent
	Bool(key string, value bool) LogEvent
	Dur(key string, d time.Duration) LogEvent
	Interface(key string, i any) LogEvent
}
