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

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("unknown"))
}

func TestContextLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	cl := NewContextLogger(base)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	ctx = WithOperation(ctx, "sync_feeds")

	cl.WithContext(ctx).Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "user-1", record["user_id"])
	assert.Equal(t, "sync_feeds", record["operation"])
}

func TestMultiHandler_FansOut(t *testing.T) {
	var infoBuf, errorBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	l := slog.New(h.WithAttrs([]slog.Attr{slog.String("component", "test")}))
	l.Info("info line")
	l.Error("error line")

	assert.Contains(t, infoBuf.String(), "info line")
	assert.Contains(t, infoBuf.String(), "component=test")
	assert.NotContains(t, errorBuf.String(), "info line")
	assert.Contains(t, errorBuf.String(), "error line")
}
