package configs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"err", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Logger{Level: tt.level}.SlogLevel())
		})
	}
}

func TestLoggerHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Level: "warn", Format: "JSON"}.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("unmapped taxonomy code", slog.String("code", "cobol"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	assert.Equal(t, "unmapped taxonomy code", gjson.GetBytes(lines[0], "msg").String())
	assert.Equal(t, "cobol", gjson.GetBytes(lines[0], "code").String())
}

func TestLoggerHandlerText(t *testing.T) {
	var buf bytes.Buffer
	h := Logger{Level: "debug", Format: "yaml"}.Handler(&buf)

	assert.IsType(t, &slog.TextHandler{}, h)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}
