package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventsHandlerParams holds dependencies for EventsHandler, injected by Fx.
type EventsHandlerParams struct {
	fx.In

	Bus    service.EventBus
	Logger *slog.Logger
}

// EventsHandler streams the bus events of one client as server-sent events
type EventsHandler struct {
	bus       service.EventBus
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewEventsHandler is the constructor for EventsHandler
func NewEventsHandler(params EventsHandlerParams) *EventsHandler {
	return &EventsHandler{
		bus:       params.Bus,
		logger:    params.Logger,
		heartbeat: constants.EventStreamHeartbeat,
	}
}

// Stream holds the connection open until the client goes away.
// A slow reader loses events instead of blocking publishers.
func (h *EventsHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	clientID := deliverycontext.GetSession(c).ClientID
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events := make(chan entity.Event, constants.EventStreamBufferSize)
	unsubscribe := h.bus.SubscribeAll(func(_ context.Context, event entity.Event) {
		if event.ClientID != clientID {
			return
		}
		select {
		case events <- event:
		default:
			logger.Warn("Event stream buffer full, dropping event", "topic", event.Topic)
		}
	})
	defer unsubscribe()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event := <-events:
			if err := writeEvent(res, event); err != nil {
				logger.Debug("Event stream closed", "error", err)

				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event entity.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Topic, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
