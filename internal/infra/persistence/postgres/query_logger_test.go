package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testQueryConfig(debug bool, slow time.Duration) *config.Config {
	cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: slow}}
	cfg.Env.Debug = debug

	return cfg
}

func sqlFn(statement string) func() (string, int64) {
	return func() (string, int64) { return statement, 1 }
}

func TestQueryLogger_Trace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{
			name: "failed query",
			err:  errors.New("connection reset"),
			want: `"level":"ERROR","msg":"Key-value query failed"`,
		},
		{
			name: "missing key",
			err:  gorm.ErrRecordNotFound,
		},
		{
			name:    "slow query",
			elapsed: time.Second,
			want:    `"level":"WARN","msg":"Key-value query slow"`,
		},
		{
			name: "fast query",
		},
		{
			name:  "fast query in debug mode",
			debug: true,
			want:  `"level":"DEBUG","msg":"Key-value query"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := newQueryLogger(newBufferLogger(&buf), testQueryConfig(tt.debug, 100*time.Millisecond))

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn(`SELECT * FROM "kv_entries"`), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `kv_entries`)
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	t.Parallel()

	var fallback, request bytes.Buffer
	l := newQueryLogger(newBufferLogger(&fallback), testQueryConfig(false, 0))
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&request).With("request_id", "req-1"))

	l.Trace(ctx, time.Now(), sqlFn("DELETE FROM kv_entries"), errors.New("boom"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, request.String(), `"request_id":"req-1"`)
}

func TestQueryLogger_TruncatesStatements(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newQueryLogger(newBufferLogger(&buf), testQueryConfig(false, 0))
	long := "INSERT INTO kv_entries VALUES ('" + strings.Repeat("x", 2*maxLoggedSQL) + "')"

	l.Trace(context.Background(), time.Now(), sqlFn(long), errors.New("boom"))

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), strings.Repeat("x", 100)+`...`)
}

func TestQueryLogger_LogMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := newQueryLogger(newBufferLogger(&buf), nil)
	silent := base.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	silent.Error(context.Background(), "migration %s failed", "kv_entries")
	assert.Empty(t, buf.String())

	base.Warn(context.Background(), "migration %s slow", "kv_entries")
	assert.Contains(t, buf.String(), "Key-value store: migration kv_entries slow")
}
