// Package geolocation provides device position sources and the last-fix cache.
package geolocation

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

var (
	// ErrPermissionDenied is returned when the user refused to share the position
	ErrPermissionDenied = errors.New("geolocation permission denied")

	// ErrPositionUnavailable is returned when the device had no fix to report
	ErrPositionUnavailable = errors.New("geolocation position unavailable")
)

// Report is what a browser sends after asking the device for its position
type Report struct {
	Lat    *float64
	Long   *float64
	Denied bool
}

type reportedGeolocator struct {
	report Report
}

// NewReportedGeolocator answers with the position the client already obtained
func NewReportedGeolocator(report Report) service.Geolocator {
	return reportedGeolocator{report: report}
}

func (g reportedGeolocator) CurrentPosition(ctx context.Context) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, errors.WithStack(err)
	}

	switch {
	case g.report.Denied:
		return entity.Coordinate{}, ErrPermissionDenied
	case g.report.Lat == nil || g.report.Long == nil:
		return entity.Coordinate{}, ErrPositionUnavailable
	case !validCoordinate(*g.report.Lat, *g.report.Long):
		return entity.Coordinate{}, errors.Wrapf(ErrPositionUnavailable, "invalid coordinate %f,%f", *g.report.Lat, *g.report.Long)
	}

	return entity.Coordinate{Lat: *g.report.Lat, Long: *g.report.Long}, nil
}

func validCoordinate(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}
