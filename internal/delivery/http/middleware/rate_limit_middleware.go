package middleware

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client id, falling back to the remote IP
type RateLimiter struct {
	mu            sync.Mutex
	visitors      map[string]*visitor
	limit         rate.Limit
	burst         int
	cleanupPeriod time.Duration
	clientTTL     time.Duration
	now           func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// RateLimiterParams holds the dependencies of the rate limiter
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// NewRateLimiter creates the place search limiter and stops its cleanup loop with the app
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	cfg := params.Config.RateLimit
	rl := newRateLimiter(rate.Limit(cfg.PerSecond), cfg.Burst, cfg.CleanupPeriod, cfg.ClientTTL)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			rl.Shutdown()

			return nil
		},
	})

	return rl
}

func newRateLimiter(limit rate.Limit, burst int, cleanupPeriod, clientTTL time.Duration) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())
	rl := &RateLimiter{
		visitors:      make(map[string]*visitor),
		limit:         limit,
		burst:         burst,
		cleanupPeriod: cleanupPeriod,
		clientTTL:     clientTTL,
		now:           time.Now,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
	go rl.cleanupLoop(ctx)

	return rl
}

// Limit rejects requests over the client's budget with ErrTooManyRequests
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := deliverycontext.GetSession(c).ClientID
		if key == "" {
			key = c.RealIP()
		}

		if !rl.allow(key) {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()

	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context) {
	defer close(rl.done)

	ticker := time.NewTicker(rl.cleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.clientTTL)
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

// Shutdown stops the cleanup goroutine and waits for it to exit
func (rl *RateLimiter) Shutdown() {
	rl.cancel()
	<-rl.done
}
