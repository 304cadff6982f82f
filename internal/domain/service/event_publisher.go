package service

import (
	"context"
	"time"
)

// StorefrontEvent is a bus event as relayed to an external message queue
type StorefrontEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Origin     string    `json:"origin"` // Instance that relayed the event
	Topic      string    `json:"topic"`
	ClientID   string    `json:"client_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStorefrontEvent publishes one relayed event
	PublishStorefrontEvent(ctx context.Context, event *StorefrontEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
