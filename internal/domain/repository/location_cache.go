package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocationCache is the single-slot record of a client's last confirmed delivery location.
type LocationCache interface {
	// Get returns the stored location, or entity.DefaultStoredLocation when none was confirmed
	// or the stored record cannot be read.
	Get(ctx context.Context, clientID string) (entity.StoredLocation, error)

	// Save overwrites the slot with location as one record.
	Save(ctx context.Context, clientID string, location entity.StoredLocation) error
}
