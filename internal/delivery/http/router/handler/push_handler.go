package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// OriginSource names the instance whose own relayed events must be ignored
type OriginSource interface {
	Origin() string
}

// TokenVerifier checks the bearer token of a push request
type TokenVerifier func(req *http.Request) error

// PushHandler receives events relayed by other storefront instances and
// republishes them on the local bus, so event streams held open here see them.
type PushHandler struct {
	verify TokenVerifier
	bus    service.EventBus
	origin OriginSource
	logger *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Bus    service.EventBus
	Origin OriginSource
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify TokenVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal {
		verify = verifyPubSubToken
	}

	return &PushHandler{
		verify: verify,
		bus:    params.Bus,
		origin: params.Origin,
		logger: params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged so Pub/Sub does not redeliver them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StorefrontEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("Failed to parse relayed event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.Origin != "" && event.Origin == h.origin.Origin() {
		return c.NoContent(http.StatusOK)
	}
	if event.Topic == "" || event.ClientID == "" {
		h.logger.Warn("Dropping relayed event without topic or client",
			slog.String("event_id", event.EventID),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.WithRelayed(deliverycontext.WithRequest(ctx, requestID, h.logger))

	deliverycontext.GetLogger(ctx).Debug("Republishing relayed event",
		slog.String("event_id", event.EventID),
		slog.String("topic", event.Topic),
		slog.String("origin", event.Origin),
	)

	h.bus.Publish(ctx, entity.Event{
		Topic:    entity.Topic(event.Topic),
		ClientID: event.ClientID,
		Payload:  event.Payload,
	})

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.StorefrontEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
