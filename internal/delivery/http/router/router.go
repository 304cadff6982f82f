// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/NYTimes/gziphandler"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	SessionHandler  *handler.SessionHandler
	LocationHandler *handler.LocationHandler
	DeliveryHandler *handler.DeliveryHandler
	EventsHandler   *handler.EventsHandler
	PushHandler     *handler.PushHandler

	SessionMiddleware *middleware.SessionMiddleware
	RateLimiter       *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Relayed events from other instances
	e.POST("/internal/pubsub/push", p.PushHandler.HandlePush)

	// Event stream; not compressed so every event is flushed as written
	e.GET("/events", p.EventsHandler.Stream, p.SessionMiddleware.Resolve)

	api := e.Group("/api/v1")
	api.Use(echo.WrapMiddleware(gziphandler.GzipHandler))
	api.Use(p.SessionMiddleware.Resolve)

	cart := api.Group("/cart")
	{
		cart.GET("", p.CartHandler.GetCart)
		cart.GET("/count", p.CartHandler.Count)
		cart.POST("/items", p.CartHandler.AddItem)
		cart.POST("/items/increase", p.CartHandler.IncreaseQuantity)
		cart.POST("/items/decrease", p.CartHandler.DecreaseQuantity)
		cart.DELETE("/items/:productId", p.CartHandler.RemoveItem)
		cart.DELETE("", p.CartHandler.Clear)
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("", p.WishlistHandler.List)
		wishlist.GET("/:productId", p.WishlistHandler.Contains)
		wishlist.POST("", p.WishlistHandler.Add)
		wishlist.DELETE("/:productId", p.WishlistHandler.Remove)
	}

	session := api.Group("/session")
	{
		session.POST("/sign-in", p.SessionHandler.SignIn)
		session.POST("/sign-out", p.SessionHandler.SignOut)
	}

	api.GET("/location", p.LocationHandler.GetLocation)

	delivery := api.Group("/delivery")
	{
		delivery.GET("", p.DeliveryHandler.Snapshot)
		delivery.POST("/open", p.DeliveryHandler.Open)
		delivery.POST("/close", p.DeliveryHandler.Close)
		delivery.POST("/input", p.DeliveryHandler.Input, p.RateLimiter.Limit)
		delivery.POST("/select", p.DeliveryHandler.Select)
		delivery.POST("/current-location", p.DeliveryHandler.CurrentLocation)
	}
}
