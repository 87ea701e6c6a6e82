package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       level,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)
	return &buf
}

func TestJSONLogging(t *testing.T) {
	buf := captureJSON(t, LogLevelInfo)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, EnvironmentTest, entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	buf := captureJSON(t, LogLevelWarn)

	Info("hidden")
	Debug("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	buf := captureJSON(t, LogLevelInfo)

	ctx := WithGame(WithRunID(context.Background(), "run-123"), "genshin")
	assert.Equal(t, "run-123", GetRunID(ctx))

	FromContext(ctx).Info("tagged")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-123", entry[AttrKeyRunID])
	assert.Equal(t, "genshin", entry[AttrKeyGame])
}

func TestFromContext_Untagged(t *testing.T) {
	assert.Equal(t, "", GetRunID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotEmpty(t, GenerateRunID())
	assert.NotEqual(t, GenerateRunID(), GenerateRunID())
}

func TestForEnvironment(t *testing.T) {
	prod := ForEnvironment(EnvironmentProduction)
	assert.True(t, prod.IsJSON())
	assert.Equal(t, slog.LevelInfo, prod.LogLevel())
	assert.False(t, prod.AddSource)
	assert.Equal(t, DefaultServiceName, prod.ServiceName)

	dev := ForEnvironment("")
	assert.False(t, dev.IsJSON())
	assert.Equal(t, slog.LevelDebug, dev.LogLevel())
	assert.True(t, dev.AddSource)
	assert.Equal(t, EnvironmentDev, dev.Environment)

	assert.Equal(t, slog.LevelWarn, ForEnvironment(EnvironmentTest).LogLevel())
}

func TestBaseAttributesOmitEmpty(t *testing.T) {
	attrs := Config{ServiceName: "svc"}.BaseAttributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.in}.LogLevel())
		})
	}
}
