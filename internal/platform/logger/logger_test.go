package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/andesbank/core-banking/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupParsesLogLevel(t *testing.T) {
	cases := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo}, // invalid levels fall back to info
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.True(t, logger.Enabled(context.Background(), tc.enabled))
		})
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))

	// Without a stored logger the default is returned.
	assert.NotNil(t, FromContext(context.Background()))

	// FromContextOrDefault prefers the stored logger, then the fallback.
	assert.Same(t, custom, FromContextOrDefault(ctx, nil))
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
