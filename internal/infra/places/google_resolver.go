// Package places adapts the Google Maps Platform place APIs to service.PlaceResolver.
package places

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"googlemaps.github.io/maps"
)

type googleResolver struct {
	client   *maps.Client
	country  string
	language string
	logger   *slog.Logger
}

// NewGoogleResolver creates a resolver backed by Google Places and Geocoding.
// Extra client options are mainly used to point the client at a test server.
func NewGoogleResolver(cfg *config.PlacesConfig, logger *slog.Logger, opts ...maps.ClientOption) (service.PlaceResolver, error) {
	clientOpts := append([]maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}, opts...)

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}

	return &googleResolver{
		client:   client,
		country:  cfg.Country,
		language: cfg.Language,
		logger:   logger,
	}, nil
}

func (r *googleResolver) Predict(ctx context.Context, text string) []entity.PlaceCandidate {
	req := &maps.PlaceAutocompleteRequest{
		Input:    strings.TrimSpace(text),
		Language: r.language,
	}
	if r.country != "" {
		req.Components = map[maps.Component][]string{
			maps.ComponentCountry: {r.country},
		}
	}

	resp, err := r.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		r.logger.Warn("Place autocomplete failed",
			slog.String("input", req.Input),
			slog.Any("error", err),
		)

		return []entity.PlaceCandidate{}
	}

	candidates := make([]entity.PlaceCandidate, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		candidate := entity.PlaceCandidate{
			PlaceID:     prediction.PlaceID,
			Description: prediction.Description,
		}
		if prediction.StructuredFormatting.MainText != "" {
			candidate.StructuredFormatting = &entity.StructuredFormatting{
				MainText:      prediction.StructuredFormatting.MainText,
				SecondaryText: prediction.StructuredFormatting.SecondaryText,
			}
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}

func (r *googleResolver) Resolve(ctx context.Context, placeID string) (entity.ResolvedPlace, error) {
	result, err := r.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: r.language,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskFormattedAddress,
		},
	})
	if err != nil {
		return entity.ResolvedPlace{}, domainerrors.NewUpstreamError(domainerrors.ErrPlaceNotFound, err)
	}

	return entity.ResolvedPlace{
		Lat:     result.Geometry.Location.Lat,
		Long:    result.Geometry.Location.Lng,
		Address: result.FormattedAddress,
	}, nil
}

func (r *googleResolver) ReverseGeocode(ctx context.Context, lat, long float64) (string, error) {
	results, err := r.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: long},
		Language: r.language,
	})
	if err != nil {
		return "", errors.Wrap(err, "reverse geocode")
	}

	for _, result := range results {
		if result.FormattedAddress != "" {
			return result.FormattedAddress, nil
		}
	}

	return "", nil
}
