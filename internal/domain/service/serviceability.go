package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ServiceabilityChecker answers whether delivery is currently offered at a coordinate.
type ServiceabilityChecker interface {
	// Check returns the business answer; a transport failure is returned as an error.
	Check(ctx context.Context, lat, long float64) (entity.ServiceabilityResult, error)
}
