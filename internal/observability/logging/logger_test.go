package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack/internal/handler/http/requestid"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"junk":  slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "LOG_LEVEL=%q", in)
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("LOG_LEVEL", "error")
	logger = NewLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestWithRequestID(t *testing.T) {
	base := slog.Default()

	t.Run("no id leaves logger untouched", func(t *testing.T) {
		assert.Same(t, base, WithRequestID(context.Background(), base))
	})

	t.Run("id is attached", func(t *testing.T) {
		ctx := requestid.WithRequestID(context.Background(), "req-123")
		got := WithRequestID(ctx, base)
		assert.NotSame(t, base, got)
	})
}
