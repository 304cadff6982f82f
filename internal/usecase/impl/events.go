package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

func publishLoading(ctx context.Context, bus service.EventBus, topic entity.Topic, clientID string, loading bool) {
	bus.Publish(ctx, entity.Event{
		Topic:    topic,
		ClientID: clientID,
		Payload:  entity.LoadingPayload{Loading: loading},
	})
}

// publishCartUpdated announces a cart change; count is nil when the caller does not know it
func publishCartUpdated(ctx context.Context, bus service.EventBus, clientID string, count *int) {
	bus.Publish(ctx, entity.Event{
		Topic:    entity.TopicCartUpdated,
		ClientID: clientID,
		Payload:  entity.CartUpdatedPayload{CartCount: count},
	})
}

func publishTopic(ctx context.Context, bus service.EventBus, topic entity.Topic, clientID string) {
	bus.Publish(ctx, entity.Event{Topic: topic, ClientID: clientID})
}
