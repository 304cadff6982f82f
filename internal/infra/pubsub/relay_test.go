package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.StorefrontEvent
}

func (p *recordingPublisher) PublishStorefrontEvent(_ context.Context, event *service.StorefrontEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) snapshot() []*service.StorefrontEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.StorefrontEvent(nil), p.events...)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelay_ForwardsEventsInOrder(t *testing.T) {
	logger := newDiscardLogger()
	bus := eventbus.New(logger)
	publisher := &recordingPublisher{}

	relay := newRelay(bus, publisher, logger, 16)
	relay.Start()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	bus.Publish(ctx, entity.Event{Topic: entity.TopicCartUpdated, ClientID: "c1"})
	bus.Publish(ctx, entity.Event{Topic: entity.TopicWishlistUpdated, ClientID: "c1"})

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, relay.Stop(stopCtx))

	events := publisher.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, "cartUpdated", events[0].Topic)
	assert.Equal(t, "wishlistUpdated", events[1].Topic)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, "c1", events[0].ClientID)
	assert.NotEmpty(t, events[0].EventID)
	assert.NotEqual(t, events[0].EventID, events[1].EventID)
	assert.Equal(t, relay.Origin(), events[0].Origin)
}

func TestRelay_SkipsEventsFromOtherInstances(t *testing.T) {
	logger := newDiscardLogger()
	bus := eventbus.New(logger)
	publisher := &recordingPublisher{}

	relay := newRelay(bus, publisher, logger, 4)
	relay.Start()

	bus.Publish(deliverycontext.WithRelayed(context.Background()), entity.Event{Topic: entity.TopicCartUpdated, ClientID: "c1"})
	bus.Publish(context.Background(), entity.Event{Topic: entity.TopicWishlistUpdated, ClientID: "c1"})

	require.NoError(t, relay.Stop(context.Background()))

	events := publisher.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "wishlistUpdated", events[0].Topic)
}

func TestRelay_IgnoresEventsAfterStop(t *testing.T) {
	logger := newDiscardLogger()
	bus := eventbus.New(logger)
	publisher := &recordingPublisher{}

	relay := newRelay(bus, publisher, logger, 4)
	relay.Start()
	require.NoError(t, relay.Stop(context.Background()))
	require.NoError(t, relay.Stop(context.Background()))

	assert.NotPanics(t, func() {
		relay.enqueue(context.Background(), entity.Event{Topic: entity.TopicCartUpdated})
		bus.Publish(context.Background(), entity.Event{Topic: entity.TopicCartUpdated})
	})
	assert.Empty(t, publisher.snapshot())
}

func TestNewRelay_SubscribesOnlyWithBroker(t *testing.T) {
	tests := []struct {
		name      string
		publisher service.EventPublisher
		wantSubs  int
	}{
		{name: "no broker", publisher: &noopPublisher{logger: newDiscardLogger()}, wantSubs: 0},
		{name: "broker", publisher: &recordingPublisher{}, wantSubs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newDiscardLogger()
			bus := eventbus.New(logger)
			lc := fxtest.NewLifecycle(t)

			relay := NewRelay(RelayParams{
				Lc:        lc,
				Config:    &config.Config{},
				Bus:       bus,
				Publisher: tt.publisher,
				Logger:    logger,
			})
			lc.RequireStart()
			assert.Equal(t, tt.wantSubs, bus.Len())
			assert.NotEmpty(t, relay.Origin())

			lc.RequireStop()
			assert.Equal(t, 0, bus.Len())
		})
	}
}
