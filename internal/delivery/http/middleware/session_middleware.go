package middleware

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix     = "Bearer "
	clientCookieLife = 365 * 24 * time.Hour
)

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SessionMiddleware resolves the caller's client id and credential into an entity.SessionContext.
// A browser without a usable client id gets a fresh one in a long-lived cookie.
type SessionMiddleware struct{}

// NewSessionMiddleware creates the session middleware
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Resolve sets the session on the echo context and the client id on the request logger
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		clientID := strings.TrimSpace(req.Header.Get(deliverycontext.HeaderXClientID))
		if clientID == "" {
			if cookie, err := req.Cookie(deliverycontext.CookieClientID); err == nil {
				clientID = cookie.Value
			}
		}

		if !clientIDPattern.MatchString(clientID) {
			clientID = uuid.New().String()
			c.SetCookie(&http.Cookie{
				Name:     deliverycontext.CookieClientID,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int(clientCookieLife.Seconds()),
				HttpOnly: true,
				Secure:   req.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Response().Header().Set(deliverycontext.HeaderXClientID, clientID)

		session := entity.SessionContext{
			ClientID:   clientID,
			Credential: bearerCredential(req.Header.Get(echo.HeaderAuthorization)),
		}
		deliverycontext.SetSession(c, session)

		ctx := req.Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("client_id", clientID)))
			c.SetRequest(req.WithContext(ctx))
		}

		return next(c)
	}
}

// bearerCredential returns the opaque token of a Bearer authorization header, or ""
func bearerCredential(header string) string {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
