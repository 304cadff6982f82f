// Package serviceability answers whether delivery is offered at a coordinate.
package serviceability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/goccy/go-json"
)

type httpChecker struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPChecker asks the delivery backend at baseURL+path
func NewHTTPChecker(baseURL, path string, timeout time.Duration, logger *slog.Logger) service.ServiceabilityChecker {
	return &httpChecker{
		endpoint: strings.TrimRight(baseURL, "/") + path,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type checkResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Check treats any JSON body carrying "success" as the answer, whatever the status code.
func (c *httpChecker) Check(ctx context.Context, lat, long float64) (entity.ServiceabilityResult, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("long", strconv.FormatFloat(long, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return entity.ServiceabilityResult{}, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.ServiceabilityResult{}, errors.Wrap(err, "serviceability request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.ServiceabilityResult{}, errors.Wrap(err, "read serviceability response")
	}

	var decoded checkResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Success != nil {
		return entity.ServiceabilityResult{
			Success: *decoded.Success,
			Message: decoded.Message,
		}, nil
	}

	c.logger.Warn("Unexpected serviceability response",
		slog.Int("status", resp.StatusCode),
		slog.Int("body_size", len(body)),
	)

	return entity.ServiceabilityResult{}, errors.Errorf("serviceability check returned status %d without an answer", resp.StatusCode)
}
