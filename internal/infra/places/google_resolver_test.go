package places

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestResolver(t *testing.T, handler http.HandlerFunc) service.PlaceResolver {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resolver, err := NewGoogleResolver(
		&config.PlacesConfig{APIKey: "AIza-test", Country: "in", Language: "en"},
		newDiscardLogger(),
		maps.WithBaseURL(server.URL),
	)
	require.NoError(t, err)

	return resolver
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestGoogleResolver_Predict(t *testing.T) {
	var components string
	resolver := createTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		components = r.URL.Query().Get("components")
		writeJSON(w, `{
			"status": "OK",
			"predictions": [{
				"place_id": "p1",
				"description": "Hazratganj, Lucknow, Uttar Pradesh, India",
				"structured_formatting": {"main_text": "Hazratganj", "secondary_text": "Lucknow, Uttar Pradesh, India"}
			}]
		}`)
	})

	candidates := resolver.Predict(context.Background(), "  hazrat ")

	assert.Equal(t, "country:in", components)
	require.Len(t, candidates, 1)
	assert.Equal(t, entity.PlaceCandidate{
		PlaceID:     "p1",
		Description: "Hazratganj, Lucknow, Uttar Pradesh, India",
		StructuredFormatting: &entity.StructuredFormatting{
			MainText:      "Hazratganj",
			SecondaryText: "Lucknow, Uttar Pradesh, India",
		},
	}, candidates[0])
}

func TestGoogleResolver_PredictFailureYieldsEmptyList(t *testing.T) {
	resolver := createTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"status": "REQUEST_DENIED", "error_message": "bad key"}`)
	})

	candidates := resolver.Predict(context.Background(), "hazrat")

	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestGoogleResolver_Resolve(t *testing.T) {
	resolver := createTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{
			"status": "OK",
			"result": {
				"formatted_address": "Hazratganj, Lucknow",
				"geometry": {"location": {"lat": 26.85, "lng": 80.94}}
			}
		}`)
	})

	place, err := resolver.Resolve(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, entity.ResolvedPlace{Lat: 26.85, Long: 80.94, Address: "Hazratganj, Lucknow"}, place)
}

func TestGoogleResolver_ResolveNotFound(t *testing.T) {
	resolver := createTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"status": "NOT_FOUND"}`)
	})

	_, err := resolver.Resolve(context.Background(), "missing")

	require.Error(t, err)
}

func TestGoogleResolver_ReverseGeocode(t *testing.T) {
	resolver := createTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"status": "OK", "results": [{"formatted_address": "Gomti Nagar, Lucknow"}]}`)
	})

	label, err := resolver.ReverseGeocode(context.Background(), 26.86, 81.0)

	require.NoError(t, err)
	assert.Equal(t, "Gomti Nagar, Lucknow", label)
}

func TestNewPlaceResolver_NoKeyUsesNoop(t *testing.T) {
	resolver, err := NewPlaceResolver(&config.Config{}, newDiscardLogger())
	require.NoError(t, err)

	assert.Empty(t, resolver.Predict(context.Background(), "anything"))

	label, err := resolver.ReverseGeocode(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, label)

	_, err = resolver.Resolve(context.Background(), "p1")
	assert.Error(t, err)
}
