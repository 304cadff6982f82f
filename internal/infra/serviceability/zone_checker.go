package serviceability

import (
	"context"
	"os"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// zone is one delivery area
type zone struct {
	name     string
	geometry orb.Geometry
}

type zoneChecker struct {
	zones         []zone
	rejectMessage string
}

// LoadZoneChecker reads a GeoJSON FeatureCollection of (Multi)Polygon delivery areas
func LoadZoneChecker(path, rejectMessage string) (service.ServiceabilityChecker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read zones file %s", path)
	}

	return NewZoneChecker(data, rejectMessage)
}

// NewZoneChecker parses raw GeoJSON into a checker
func NewZoneChecker(data []byte, rejectMessage string) (service.ServiceabilityChecker, error) {
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse zones")
	}

	zones := make([]zone, 0, len(collection.Features))
	for _, feature := range collection.Features {
		switch feature.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			zones = append(zones, zone{
				name:     feature.Properties.MustString("name", ""),
				geometry: feature.Geometry,
			})
		}
	}

	if len(zones) == 0 {
		return nil, errors.New("zones file has no polygon features")
	}

	return &zoneChecker{
		zones:         zones,
		rejectMessage: rejectMessage,
	}, nil
}

func (c *zoneChecker) Check(_ context.Context, lat, long float64) (entity.ServiceabilityResult, error) {
	point := orb.Point{long, lat}

	for _, z := range c.zones {
		if contains(z.geometry, point) {
			result := entity.ServiceabilityResult{Success: true}
			if z.name != "" {
				result.Message = "We deliver to " + z.name
			}

			return result, nil
		}
	}

	return entity.ServiceabilityResult{Success: false, Message: c.rejectMessage}, nil
}

func contains(geometry orb.Geometry, point orb.Point) bool {
	switch g := geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, point)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, point)
	default:
		return false
	}
}
