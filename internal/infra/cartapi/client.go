// Package cartapi is the HTTP client for the account-backed cart and wishlist service.
package cartapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/goccy/go-json"
)

// maxErrorBody bounds how much of a failed response is kept in the error
const maxErrorBody = 512

// StatusError is returned when the cart service answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "cart service returned status " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

// Client implements service.RemoteCartService and service.RemoteWishlistService
type Client struct {
	baseURL    string
	paths      config.CartConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a cart service client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Cart.BaseURL, "/"),
		paths:   *cfg.Cart,
		httpClient: &http.Client{
			Timeout: cfg.Cart.Timeout,
		},
		logger: logger,
	}
}

var (
	_ service.RemoteCartService     = (*Client)(nil)
	_ service.RemoteWishlistService = (*Client)(nil)
)

type addResponse struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AddItem posts the line and returns the service's answer unchanged
func (c *Client) AddItem(ctx context.Context, credential string, req service.RemoteAddRequest) (*entity.CartMutationResult, error) {
	body, err := c.do(ctx, http.MethodPost, c.paths.AddPath, credential, req)
	if err != nil {
		return nil, err
	}

	result := &entity.CartMutationResult{Success: true, Data: body}

	var decoded addResponse
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &decoded) != nil {
		return result, nil
	}

	if decoded.Success != nil {
		result.Success = *decoded.Success
	}
	result.Message = decoded.Message
	if len(decoded.Data) != 0 {
		result.Data = decoded.Data
	}

	return result, nil
}

func (c *Client) GetCart(ctx context.Context, credential string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.paths.GetPath, credential, nil)
}

type updateQuantityRequest struct {
	ProductID string                `json:"productId"`
	Action    entity.QuantityAction `json:"action"`
}

func (c *Client) UpdateQuantity(ctx context.Context, credential, productID string, action entity.QuantityAction) error {
	_, err := c.do(ctx, http.MethodPatch, c.paths.UpdateQuantityPath, credential, updateQuantityRequest{
		ProductID: productID,
		Action:    action,
	})

	return err
}

func (c *Client) RemoveItem(ctx context.Context, credential, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, joinPath(c.paths.RemovePath, productID), credential, nil)

	return err
}

func (c *Client) ClearCart(ctx context.Context, credential string) error {
	_, err := c.do(ctx, http.MethodDelete, c.paths.ClearPath, credential, nil)

	return err
}

func (c *Client) GetWishlist(ctx context.Context, credential string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.paths.WishlistPath, credential, nil)
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (c *Client) AddWishlistItem(ctx context.Context, credential, productID string) error {
	_, err := c.do(ctx, http.MethodPost, c.paths.WishlistPath, credential, wishlistRequest{ProductID: productID})

	return err
}

func (c *Client) RemoveWishlistItem(ctx context.Context, credential, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, joinPath(c.paths.WishlistPath, productID), credential, nil)

	return err
}

func (c *Client) do(ctx context.Context, method, path, credential string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Cart service request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.WithStack(&StatusError{StatusCode: resp.StatusCode, Body: truncate(body)})
	}

	return body, nil
}

func joinPath(base, productID string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(productID)
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}

	return string(body)
}
