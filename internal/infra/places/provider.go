package places

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
)

// NewPlaceResolver picks the Google resolver when an API key is configured
func NewPlaceResolver(cfg *config.Config, logger *slog.Logger) (service.PlaceResolver, error) {
	if cfg.Places == nil || cfg.Places.APIKey == "" {
		logger.Info("Places API key not configured, address search disabled")

		return NewNoopResolver(), nil
	}

	return NewGoogleResolver(cfg.Places, logger)
}
