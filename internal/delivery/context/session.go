package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeySession is the echo.Context key of the caller's entity.SessionContext.
	KeySession ContextKey = "session"

	// HeaderXClientID carries the browser's client id.
	HeaderXClientID = "X-Client-Id"

	// CookieClientID is the cookie fallback for HeaderXClientID.
	CookieClientID = "sf_client_id"
)

// SetSession stores the session in echo.Context.
func SetSession(c echo.Context, session entity.SessionContext) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session set by the session middleware, or the zero session.
func GetSession(c echo.Context) entity.SessionContext {
	session, _ := c.Get(string(KeySession)).(entity.SessionContext)

	return session
}
