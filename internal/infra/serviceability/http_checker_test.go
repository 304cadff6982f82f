package serviceability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    entity.ServiceabilityResult
		wantErr bool
	}{
		{
			name:   "serviceable",
			status: http.StatusOK,
			body:   `{"success":true,"message":"We deliver here"}`,
			want:   entity.ServiceabilityResult{Success: true, Message: "We deliver here"},
		},
		{
			name:   "rejected with error status is still an answer",
			status: http.StatusBadRequest,
			body:   `{"success":false,"message":"Out of service area"}`,
			want:   entity.ServiceabilityResult{Success: false, Message: "Out of service area"},
		},
		{
			name:    "server error without answer",
			status:  http.StatusInternalServerError,
			body:    `internal error`,
			wantErr: true,
		},
		{
			name:    "ok without success field",
			status:  http.StatusOK,
			body:    `{"message":"hi"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			checker := NewHTTPChecker(server.URL, "/delivery/check", time.Second, newDiscardLogger())
			result, err := checker.Check(context.Background(), 12, 77.5)

			assert.Equal(t, "lat=12&long=77.5", gotQuery)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestHTTPChecker_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	checker := NewHTTPChecker(server.URL, "/delivery/check", time.Second, newDiscardLogger())
	_, err := checker.Check(context.Background(), 1, 2)

	assert.Error(t, err)
}
