package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/buildgrid/internal/ctxlog"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: ctxlog.ParseLevel(levelStr),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(ctxlog.LevelName(level))
				}
			}
			return a
		},
	}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
