package serviceability

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// NewServiceabilityChecker builds the configured checker
func NewServiceabilityChecker(cfg *config.Config, logger *slog.Logger) (service.ServiceabilityChecker, error) {
	sc := cfg.Serviceability

	switch sc.Provider {
	case constants.ServiceabilityProviderHTTP:
		if sc.BaseURL == "" {
			return nil, errors.New("baseUrl is required for the http serviceability provider")
		}
		logger.Info("Using HTTP serviceability checker", slog.String("base_url", sc.BaseURL))

		return NewHTTPChecker(sc.BaseURL, sc.Path, sc.Timeout, logger), nil

	case constants.ServiceabilityProviderZones:
		if sc.ZonesFile == "" {
			return nil, errors.New("zonesFile is required for the zones serviceability provider")
		}
		logger.Info("Using zone serviceability checker", slog.String("zones_file", sc.ZonesFile))

		return LoadZoneChecker(sc.ZonesFile, sc.RejectMessage)

	default:
		return nil, errors.Errorf("unknown serviceability provider: %s", sc.Provider)
	}
}
