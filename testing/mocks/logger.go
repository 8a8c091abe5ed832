package mocks

import (
	"time"

	"github.com/gaborage/stmtkit/logger"
)

// Logger implements logger.Logger with no output.
type Logger struct{}

// Compile-time checks to ensure mocks satisfy interfaces
var _ logger.Logger = (*Logger)(nil)
var _ logger.LogEvent = (*LogEvent)(nil)

// Info returns a no-op LogEvent for info-level logging
func (l *Logger) Info() logger.LogEvent { return &LogEvent{} }

// Error returns a no-op LogEvent for error-level logging
func (l *Logger) Error() logger.LogEvent { return &LogEvent{} }

// Debug returns a no-op LogEvent for debug-level logging
func (l *Logger) Debug() logger.LogEvent { return &LogEvent{} }

// Warn returns a no-op LogEvent for warning-level logging
func (l *Logger) Warn() logger.LogEvent { return &LogEvent{} }

// Fatal returns a no-op LogEvent. It does not exit.
func (l *Logger) Fatal() logger.LogEvent { return &LogEvent{} }

// WithFields returns the same logger instance
func (l *Logger) WithFields(_ map[string]any) logger.Logger { return l }

// LogEvent implements logger.LogEvent with no output.
type LogEvent struct{}

// Msg discards the message
func (e *LogEvent) Msg(_ string) {}

// Msgf discards the formatted message
func (e *LogEvent) Msgf(_ string, _ ...any) {}

// Err ignores the error
func (e *LogEvent) Err(_ error) logger.LogEvent { return e }

// Str ignores the field
func (e *LogEvent) Str(_, _ string) logger.LogEvent { return e }

// Strs ignores the field
func (e *LogEvent) Strs(_ string, _ []string) logger.LogEvent { return e }

// Int ignores the field
func (e *LogEvent) Int(_ string, _ int) logger.LogEvent { return e }

// Uint64 ignores the field
func (e *LogEvent) Uint64(_ string, _ uint64) logger.LogEvent { return e }

// Bool ignores the field
func (e *LogEvent) Bool(_ string, _ bool) logger.LogEvent { return e }

// Dur ignores the field
func (e *LogEvent) Dur(_ string, _ time.Duration) logger.LogEvent { return e }

// Interface ignores the field
func (e *LogEvent) Interface(_ string, _ any) logger.LogEvent { return e }
