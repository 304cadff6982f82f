// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is durable storage mapping string keys to JSON-serializable values.
// Callers own disjoint keys, so the store does no cross-key coordination.
type KeyValueStore interface {
	// Load decodes the value stored under key into out.
	// Returns ErrKeyNotFound if the key has never been written or was deleted.
	Load(ctx context.Context, key string, out any) error

	// Save encodes value as JSON and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
