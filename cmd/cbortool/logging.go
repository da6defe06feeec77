package main

import (
	"log/slog"
	"os"
	"time"
)

// newLogger builds a JSON slog logger with an RFC3339 "timestamp" key
// instead of slog's default "time", no package-level config struct to
// read from since this is a one-shot CLI rather than a long-running
// service.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
		Level: level,
	})
	return slog.New(handler).With("component", "cbortool")
}
