// Package logging centralizes log/slog construction so every process
// emits the same JSON shape and honors the same LOG_LEVEL switch.
package logging

import (
	"context"
	"log/slog"
	"os"

	"fintrack/internal/handler/http/requestid"
)

// NewLogger builds a JSON logger. LOG_LEVEL selects the level
// (debug, info, warn, error; default info); source locations are
// attached for warn and above.
func NewLogger() *slog.Logger {
	lvl := parseLevel(os.Getenv("LOG_LEVEL"))
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelWarn,
	}))
}

// NewTextLogger is the human-readable variant for local development.
func NewTextLogger() *slog.Logger {
	lvl := parseLevel(os.Getenv("LOG_LEVEL"))
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelWarn,
	}))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID attaches the request ID carried by ctx, so log lines
// from one request correlate. Without an ID the logger is returned as is.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := requestid.FromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("request_id", id)
}
