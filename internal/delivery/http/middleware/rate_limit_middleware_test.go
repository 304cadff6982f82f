package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestRateLimiter(t *testing.T, burst int) *RateLimiter {
	t.Helper()

	rl := newRateLimiter(rate.Limit(0.001), burst, time.Hour, time.Minute)
	t.Cleanup(rl.Shutdown)

	return rl
}

func callLimited(t *testing.T, rl *RateLimiter, clientID string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/delivery/input", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	if clientID != "" {
		deliverycontext.SetSession(c, entity.SessionContext{ClientID: clientID})
	}

	return rl.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)
}

func TestRateLimiter_Limit(t *testing.T) {
	t.Parallel()

	rl := newTestRateLimiter(t, 2)

	require.NoError(t, callLimited(t, rl, "client-1"))
	require.NoError(t, callLimited(t, rl, "client-1"))
	assert.ErrorIs(t, callLimited(t, rl, "client-1"), domainerrors.ErrTooManyRequests)

	assert.NoError(t, callLimited(t, rl, "client-2"))
}

func TestRateLimiter_FallsBackToRealIP(t *testing.T) {
	t.Parallel()

	rl := newTestRateLimiter(t, 1)

	require.NoError(t, callLimited(t, rl, ""))
	assert.ErrorIs(t, callLimited(t, rl, ""), domainerrors.ErrTooManyRequests)

	rl.mu.Lock()
	_, ok := rl.visitors["10.0.0.1"]
	rl.mu.Unlock()
	assert.True(t, ok)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	t.Parallel()

	rl := newTestRateLimiter(t, 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	require.NoError(t, callLimited(t, rl, "idle"))
	now = now.Add(30 * time.Second)
	require.NoError(t, callLimited(t, rl, "active"))

	now = now.Add(45 * time.Second)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "idle")
	assert.Contains(t, rl.visitors, "active")
}
