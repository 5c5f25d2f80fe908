package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelWarn,
		"":      slog.LevelWarn,
	}

	for name, level := range cases {
		logger := newLogger(name, "text", &bytes.Buffer{})
		require.True(t, logger.Enabled(context.Background(), level), "level %q", name)
		require.False(t, logger.Enabled(context.Background(), level-1), "level %q", name)
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger("info", "json", &buf).Info("hi")
	require.Contains(t, buf.String(), `"msg":"hi"`)

	buf.Reset()
	newLogger("info", "text", &buf).Info("hi")
	require.Contains(t, buf.String(), "msg=hi")
}
