package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/eventbus"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticOrigin string

func (o staticOrigin) Origin() string { return string(o) }

type receivedEvent struct {
	event   entity.Event
	relayed bool
}

// pushFixtures holds a push handler wired to a real bus and everything that bus delivered.
type pushFixtures struct {
	handler *PushHandler
	mu      *sync.Mutex
	got     *[]receivedEvent
}

func createTestPushHandler(t *testing.T) pushFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.NewEventBus(logger)

	var mu sync.Mutex
	var got []receivedEvent
	bus.SubscribeAll(func(ctx context.Context, event entity.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, receivedEvent{event: event, relayed: deliverycontext.IsRelayed(ctx)})
	})

	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Bus:    bus,
		Origin: staticOrigin("instance-a"),
		Logger: logger,
	})

	return pushFixtures{handler: h, mu: &mu, got: &got}
}

func (f pushFixtures) events() []receivedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]receivedEvent(nil), (*f.got)...)
}

func pushBody(t *testing.T, event service.StorefrontEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func TestPushHandler_RepublishesForeignEvents(t *testing.T) {
	t.Parallel()

	fx := createTestPushHandler(t)

	code := servePush(t, fx.handler, pushBody(t, service.StorefrontEvent{
		EventID:  "e-1",
		Origin:   "instance-b",
		Topic:    entity.TopicCartUpdated.String(),
		ClientID: "client-1",
	}))
	assert.Equal(t, http.StatusOK, code)

	got := fx.events()
	require.Len(t, got, 1)
	assert.Equal(t, entity.TopicCartUpdated, got[0].event.Topic)
	assert.Equal(t, "client-1", got[0].event.ClientID)
	assert.True(t, got[0].relayed)
}

func TestPushHandler_AcknowledgesWithoutPublishing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    service.StorefrontEvent
		wantCode int
	}{
		{
			name:     "own origin",
			event:    service.StorefrontEvent{Origin: "instance-a", Topic: "cartUpdated", ClientID: "client-1"},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing client",
			event:    service.StorefrontEvent{Origin: "instance-b", Topic: "cartUpdated"},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPushHandler(t)
			assert.Equal(t, tt.wantCode, servePush(t, fx.handler, pushBody(t, tt.event)))
			assert.Empty(t, fx.events())
		})
	}
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPushHandler(t)
			assert.Equal(t, http.StatusBadRequest, servePush(t, fx.handler, tt.body))
			assert.Empty(t, fx.events())
		})
	}
}

func TestPushHandler_VerifiesTokenWhenConfigured(t *testing.T) {
	t.Parallel()

	fx := createTestPushHandler(t)
	fx.handler.verify = func(*http.Request) error { return assert.AnError }

	code := servePush(t, fx.handler, pushBody(t, service.StorefrontEvent{Origin: "instance-b", Topic: "cartUpdated", ClientID: "c"}))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, fx.events())
}
