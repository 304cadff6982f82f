package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

// DeliveryServiceParams holds the dependencies of the delivery usecase
type DeliveryServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Resolver  service.PlaceResolver
	Checker   service.ServiceabilityChecker
	Cache     repository.LocationCache
	Positions service.PositionCache
	Bus       service.EventBus
	Logger    *slog.Logger
}

type deliveryService struct {
	deps     flowDeps
	settings flowSettings
	cache    repository.LocationCache

	mu    sync.Mutex
	flows *gocache.Cache
}

// NewDeliveryService creates the delivery usecase. Flows idle for delivery.flowIdleTTL are closed and dropped.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	srv := newDeliveryService(
		flowDeps{
			resolver:  params.Resolver,
			checker:   params.Checker,
			cache:     params.Cache,
			positions: params.Positions,
			bus:       params.Bus,
			logger:    params.Logger,
		},
		settingsFromConfig(params.Config),
		params.Config.Delivery.FlowIdleTTL,
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			srv.Shutdown()

			return nil
		},
	})

	return srv
}

func newDeliveryService(deps flowDeps, settings flowSettings, idleTTL time.Duration) *deliveryService {
	flows := gocache.New(idleTTL, idleTTL)
	flows.OnEvicted(func(_ string, value any) {
		if flow, ok := value.(*deliveryCheckFlow); ok {
			flow.Close()
		}
	})

	return &deliveryService{
		deps:     deps,
		settings: settings,
		cache:    deps.cache,
		flows:    flows,
	}
}

func settingsFromConfig(cfg *config.Config) flowSettings {
	return flowSettings{
		debounce:           cfg.Delivery.Debounce,
		geolocationTimeout: cfg.Delivery.GeolocationTimeout,
		fallback: entity.Coordinate{
			Lat:  cfg.Delivery.DefaultLat,
			Long: cfg.Delivery.DefaultLong,
		},
		fallbackLabel: cfg.Delivery.FallbackLabel,
		rejectMessage: cfg.Serviceability.RejectMessage,
	}
}

// Flow returns the client's flow, creating it on first use. Every call extends its idle deadline.
func (s *deliveryService) Flow(clientID string) usecase.DeliveryCheckFlow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.flows.Get(clientID); ok {
		s.flows.SetDefault(clientID, value)

		return value.(*deliveryCheckFlow)
	}

	flow := newDeliveryCheckFlow(clientID, s.deps, s.settings)
	s.flows.SetDefault(clientID, flow)

	return flow
}

func (s *deliveryService) CurrentLocation(ctx context.Context, clientID string) (entity.StoredLocation, error) {
	return s.cache.Get(ctx, clientID)
}

// Shutdown closes every live flow so no debounce timer fires after the process stops
func (s *deliveryService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.flows.Items() {
		if flow, ok := item.Object.(*deliveryCheckFlow); ok {
			flow.Close()
		}
	}
	s.flows.Flush()
}
