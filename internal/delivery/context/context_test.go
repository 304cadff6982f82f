package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRequest(context.Background(), "req-42", base)
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))

	logger := GetLogger(ctx)
	require.NotNil(t, logger)
	logger.Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestGetLoggerOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRelayed(t *testing.T) {
	t.Parallel()

	assert.False(t, IsRelayed(context.Background()))

	ctx := WithRelayed(WithRequestID(context.Background(), "req-1"))
	assert.True(t, IsRelayed(ctx))
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
}
