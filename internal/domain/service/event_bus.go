package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventHandler receives events from the bus.
type EventHandler func(ctx context.Context, event entity.Event)

// EventBus is the in-process publish/subscribe channel between otherwise decoupled components.
// Handlers registered before a Publish receive the event, in registration order.
type EventBus interface {
	// Publish delivers event to every handler subscribed to its topic and to every catch-all handler.
	Publish(ctx context.Context, event entity.Event)

	// Subscribe registers handler for topic and returns a function that removes it.
	Subscribe(topic entity.Topic, handler EventHandler) (unsubscribe func())

	// SubscribeAll registers handler for every topic.
	SubscribeAll(handler EventHandler) (unsubscribe func())
}
