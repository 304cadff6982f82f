package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultQueueSize = 256

// Relay forwards every bus event to the EventPublisher.
// Events are published by a single worker so their order is preserved.
// When the queue is full new events are dropped.
type Relay struct {
	bus       service.EventBus
	publisher service.EventPublisher
	logger    *slog.Logger
	origin    string

	queue       chan *service.StorefrontEvent
	unsubscribe func()
	done        chan struct{}

	mu     sync.RWMutex
	closed bool
}

// RelayParams holds dependencies for Relay, injected by Fx
type RelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Bus       service.EventBus
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRelay creates a Relay bound to the application lifecycle
func NewRelay(params RelayParams) *Relay {
	queueSize := defaultQueueSize
	if params.Config.PubSub != nil && params.Config.PubSub.QueueSize > 0 {
		queueSize = params.Config.PubSub.QueueSize
	}

	relay := newRelay(params.Bus, params.Publisher, params.Logger, queueSize)

	// Without a broker the relay keeps its origin for the push receiver but never subscribes
	if _, disabled := params.Publisher.(*noopPublisher); disabled {
		params.Logger.Info("Event relay disabled, events stay on this instance")

		return relay
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			relay.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})

	return relay
}

func newRelay(bus service.EventBus, publisher service.EventPublisher, logger *slog.Logger, queueSize int) *Relay {
	return &Relay{
		bus:       bus,
		publisher: publisher,
		logger:    logger,
		origin:    uuid.New().String(),
		queue:     make(chan *service.StorefrontEvent, queueSize),
		done:      make(chan struct{}),
	}
}

// Start subscribes to the bus and starts the publishing worker
func (r *Relay) Start() {
	r.unsubscribe = r.bus.SubscribeAll(r.enqueue)

	go r.run()
}

// Stop unsubscribes and waits for queued events to be published
func (r *Relay) Stop(ctx context.Context) error {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}

	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Origin identifies this instance on relayed events
func (r *Relay) Origin() string {
	return r.origin
}

func (r *Relay) enqueue(ctx context.Context, event entity.Event) {
	// Events received from another instance are not relayed again
	if deliverycontext.IsRelayed(ctx) {
		return
	}

	relayed := &service.StorefrontEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Origin:     r.origin,
		Topic:      event.Topic.String(),
		ClientID:   event.ClientID,
		Payload:    event.Payload,
		OccurredAt: time.Now().UTC(),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	select {
	case r.queue <- relayed:
	default:
		r.logger.Warn("Relay queue full, dropping event",
			slog.String("topic", relayed.Topic),
			slog.String("client_id", relayed.ClientID),
		)
	}
}

func (r *Relay) run() {
	defer close(r.done)

	for event := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := r.publisher.PublishStorefrontEvent(ctx, event); err != nil {
			r.logger.Error("Failed to relay event",
				slog.String("topic", event.Topic),
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}
