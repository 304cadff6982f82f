package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceResolver adapts an external geocoding and autocomplete provider.
type PlaceResolver interface {
	// Predict returns ranked candidates for free text. Provider failures yield an empty list.
	Predict(ctx context.Context, text string) []entity.PlaceCandidate

	// Resolve turns a candidate into a coordinate and formatted address.
	Resolve(ctx context.Context, placeID string) (entity.ResolvedPlace, error)

	// ReverseGeocode returns a human label for a coordinate, or "" when the provider has none.
	ReverseGeocode(ctx context.Context, lat, long float64) (string, error)
}
