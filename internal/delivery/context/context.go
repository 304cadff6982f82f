// Package context carries request-scoped values between the HTTP layer, the usecases and outbound calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is the type of the keys stored in echo.Context and context.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// KeyRelayed marks events received from another storefront instance.
	KeyRelayed ContextKey = "relayed"

	// HeaderXRequestID is propagated to the cart service, the serviceability
	// service and Pub/Sub attributes.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequest stores the request id and its logger in ctx. The logger is tagged with the id.
func WithRequest(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, base.With(slog.String("request_id", requestID)))
}

// GetRequestID returns the request id set by the request id middleware,
// or a fresh one for handlers reached without it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger, falling back to the component's own logger
// for background work such as debounced searches and relay delivery.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithRelayed marks ctx as carrying an event received from another instance.
// The relay does not publish such events again.
func WithRelayed(ctx context.Context) context.Context {
	return context.WithValue(ctx, KeyRelayed, true)
}

func IsRelayed(ctx context.Context) bool {
	relayed, _ := ctx.Value(KeyRelayed).(bool)

	return relayed
}
