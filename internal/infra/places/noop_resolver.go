package places

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// noopResolver is used when no places API key is configured
type noopResolver struct{}

// NewNoopResolver returns a resolver that never finds anything
func NewNoopResolver() service.PlaceResolver {
	return noopResolver{}
}

func (noopResolver) Predict(context.Context, string) []entity.PlaceCandidate {
	return []entity.PlaceCandidate{}
}

func (noopResolver) Resolve(context.Context, string) (entity.ResolvedPlace, error) {
	return entity.ResolvedPlace{}, domainerrors.ErrPlaceNotFound
}

func (noopResolver) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return "", nil
}
