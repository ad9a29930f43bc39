// Package logging provides a nil-safe structured logger shared across
// the semantic model builder.
package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level below Debug, for per-node tracing:
// the factory logs every token it dispatches at this level.
const LevelTrace = slog.Level(-8)

var noCtx = context.Background() //nolint:gochecknoglobals

// Logger wraps *slog.Logger with nil-safe convenience methods, so the
// builder can log unconditionally and pay zero cost when the caller
// didn't configure a logger.
type Logger struct {
	L *slog.Logger
}

// Enabled reports whether logging is active at the given level.
func (l Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(noCtx, level)
}

// Log emits a structured message at the given level. No-op if unset.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(noCtx, level) {
		l.L.LogAttrs(noCtx, level, msg, attrs...)
	}
}

// Trace emits a message at LevelTrace.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// Debug emits a message at slog.LevelDebug.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}

// Info emits a message at slog.LevelInfo.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelInfo, msg, attrs...)
}
