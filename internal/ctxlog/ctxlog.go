// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, plus the extra VERBOSE level used by
// build-file diagnostics.
package ctxlog

import (
	"context"
	"log/slog"
)

// LevelVerbose sits between debug and info. Build-file loading reports
// skipped or shadowed definitions at this level.
const LevelVerbose = slog.Level(-2)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. It panics when no
// logger was attached, which always indicates a wiring bug.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// LevelName renders a level the way the logger handlers print it, knowing
// about LevelVerbose.
func LevelName(level slog.Level) string {
	if level == LevelVerbose {
		return "VERBOSE"
	}
	return level.String()
}

// ParseLevel maps a configuration string to a level. Unknown values fall back
// to info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "verbose":
		return LevelVerbose
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
