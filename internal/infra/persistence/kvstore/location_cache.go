package kvstore

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type locationCache struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewLocationCache stores each client's delivery location as a single record in store
func NewLocationCache(store repository.KeyValueStore, logger *slog.Logger) repository.LocationCache {
	return &locationCache{
		store:  store,
		logger: logger,
	}
}

// Get never fails: an absent or unreadable record yields the default location
func (c *locationCache) Get(ctx context.Context, clientID string) (entity.StoredLocation, error) {
	var location entity.StoredLocation
	if err := c.store.Load(ctx, repository.LocationKey(clientID), &location); err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			c.logger.Warn("Failed to read stored location, using default",
				slog.String("client_id", clientID),
				slog.Any("error", err),
			)
		}

		return entity.DefaultStoredLocation(), nil
	}

	return location, nil
}

func (c *locationCache) Save(ctx context.Context, clientID string, location entity.StoredLocation) error {
	if err := c.store.Save(ctx, repository.LocationKey(clientID), location); err != nil {
		return errors.Wrap(err, "failed to save location")
	}

	return nil
}
