// Package eventbus is the in-process implementation of service.EventBus.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type subscription struct {
	id      uint64
	topic   entity.Topic // empty for catch-all subscriptions
	handler service.EventHandler
}

// Bus delivers events synchronously to handlers in registration order.
// A panicking handler is logged and does not stop delivery to the others.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	logger *slog.Logger
}

// New creates an empty bus.
func New(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// NewEventBus exposes the bus as service.EventBus for dependency injection.
func NewEventBus(logger *slog.Logger) service.EventBus {
	return New(logger)
}

// Publish implements service.EventBus.
func (b *Bus) Publish(ctx context.Context, event entity.Event) {
	b.mu.RLock()
	targets := make([]subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.topic == "" || sub.topic == event.Topic {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		b.deliver(ctx, sub, event)
	}
}

// Subscribe implements service.EventBus.
func (b *Bus) Subscribe(topic entity.Topic, handler service.EventHandler) func() {
	return b.add(topic, handler)
}

// SubscribeAll implements service.EventBus.
func (b *Bus) SubscribeAll(handler service.EventHandler) func() {
	return b.add("", handler)
}

// Len returns the number of registered handlers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

func (b *Bus) add(topic entity.Topic, handler service.EventHandler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, topic: topic, handler: handler})
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)

			return
		}
	}
}

func (b *Bus) deliver(ctx context.Context, sub subscription, event entity.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				slog.String("topic", event.Topic.String()),
				slog.String("client_id", event.ClientID),
				slog.Any("panic", r),
			)
		}
	}()

	sub.handler(ctx, event)
}
