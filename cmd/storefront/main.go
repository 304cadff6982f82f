package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/cartapi"
	"storefront/internal/infra/eventbus"
	"storefront/internal/infra/geolocation"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/kvstore"
	"storefront/internal/infra/places"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/serviceability"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			eventbus.NewEventBus,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return kvstore.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cartapi.NewClient,
			func(c *cartapi.Client) service.RemoteCartService { return c },
			func(c *cartapi.Client) service.RemoteWishlistService { return c },
			places.NewPlaceResolver,
			serviceability.NewServiceabilityChecker,
			geolocation.NewPositionCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGuestStateStore,
			impl.NewCartFacade,
			impl.NewWishlistFacade,
			impl.NewSessionService,
			impl.NewDeliveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewSessionHandler,
			handler.NewLocationHandler,
			handler.NewDeliveryHandler,
			handler.NewEventsHandler,
			handler.NewPushHandler,
			func(r *pubsub.Relay) handler.OriginSource { return r },
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
