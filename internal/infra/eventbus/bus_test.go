package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *Bus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := newTestBus()
	ctx := context.Background()

	var order []string
	bus.Subscribe(entity.TopicCartUpdated, func(_ context.Context, _ entity.Event) {
		order = append(order, "first")
	})
	bus.SubscribeAll(func(_ context.Context, _ entity.Event) {
		order = append(order, "all")
	})
	bus.Subscribe(entity.TopicCartUpdated, func(_ context.Context, _ entity.Event) {
		order = append(order, "second")
	})

	bus.Publish(ctx, entity.Event{Topic: entity.TopicCartUpdated, ClientID: "c1"})

	assert.Equal(t, []string{"first", "all", "second"}, order)
}

func TestBus_FiltersByTopic(t *testing.T) {
	bus := newTestBus()

	var got []entity.Topic
	bus.Subscribe(entity.TopicLocationUpdated, func(_ context.Context, e entity.Event) {
		got = append(got, e.Topic)
	})

	bus.Publish(context.Background(), entity.Event{Topic: entity.TopicCartUpdated})
	bus.Publish(context.Background(), entity.Event{Topic: entity.TopicLocationUpdated})

	assert.Equal(t, []entity.Topic{entity.TopicLocationUpdated}, got)
}

func TestBus_SubscribersAfterPublishMissEvent(t *testing.T) {
	bus := newTestBus()
	bus.Publish(context.Background(), entity.Event{Topic: entity.TopicWishlistUpdated})

	calls := 0
	bus.Subscribe(entity.TopicWishlistUpdated, func(_ context.Context, _ entity.Event) { calls++ })

	assert.Zero(t, calls)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := newTestBus()

	calls := 0
	unsubscribe := bus.Subscribe(entity.TopicCartUpdated, func(_ context.Context, _ entity.Event) { calls++ })
	require.Equal(t, 1, bus.Len())

	unsubscribe()
	unsubscribe()
	bus.Publish(context.Background(), entity.Event{Topic: entity.TopicCartUpdated})

	assert.Zero(t, calls)
	assert.Zero(t, bus.Len())
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	delivered := false
	bus.Subscribe(entity.TopicCartUpdated, func(_ context.Context, _ entity.Event) { panic("boom") })
	bus.Subscribe(entity.TopicCartUpdated, func(_ context.Context, _ entity.Event) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), entity.Event{Topic: entity.TopicCartUpdated})
	})
	assert.True(t, delivered)
}
