package geolocation

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestReportedGeolocator(t *testing.T) {
	tests := []struct {
		name    string
		report  Report
		want    entity.Coordinate
		wantErr error
	}{
		{
			name:   "fix",
			report: Report{Lat: floatPtr(26.85), Long: floatPtr(80.95)},
			want:   entity.Coordinate{Lat: 26.85, Long: 80.95},
		},
		{
			name:    "denied",
			report:  Report{Lat: floatPtr(1), Long: floatPtr(2), Denied: true},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "missing",
			report:  Report{Lat: floatPtr(1)},
			wantErr: ErrPositionUnavailable,
		},
		{
			name:    "out of range",
			report:  Report{Lat: floatPtr(91), Long: floatPtr(2)},
			wantErr: ErrPositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewReportedGeolocator(tt.report).CurrentPosition(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionCache(t *testing.T) {
	cache := NewPositionCacheWithTTL(50 * time.Millisecond)

	_, found := cache.Get("c1")
	assert.False(t, found)

	cache.Set("c1", entity.Coordinate{Lat: 1, Long: 2})

	got, found := cache.Get("c1")
	require.True(t, found)
	assert.Equal(t, entity.Coordinate{Lat: 1, Long: 2}, got)

	_, found = cache.Get("c2")
	assert.False(t, found)

	assert.Eventually(t, func() bool {
		_, found := cache.Get("c1")

		return !found
	}, time.Second, 10*time.Millisecond)
}
