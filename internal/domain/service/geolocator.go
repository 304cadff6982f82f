package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Geolocator obtains the device's current position.
type Geolocator interface {
	// CurrentPosition blocks until a fix is available, the position is denied, or ctx is done.
	CurrentPosition(ctx context.Context) (entity.Coordinate, error)
}

// PositionCache remembers the last successful fix of each client for a short while.
type PositionCache interface {
	Get(clientID string) (entity.Coordinate, bool)
	Set(clientID string, position entity.Coordinate)
}
