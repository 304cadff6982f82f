package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/eventbus"
	"storefront/internal/infra/persistence/kvstore"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

func newMemStore(t *testing.T) repository.KeyValueStore {
	t.Helper()

	store := kvstore.NewBlobStore(memblob.OpenBucket(nil), newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// eventRecorder captures every event published on a bus.
type eventRecorder struct {
	mu     sync.Mutex
	events []entity.Event
}

func newRecordedBus() (*eventbus.Bus, *eventRecorder) {
	bus := eventbus.New(newDiscardLogger())
	rec := &eventRecorder{}
	bus.SubscribeAll(func(_ context.Context, event entity.Event) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.events = append(rec.events, event)
	})

	return bus, rec
}

func (r *eventRecorder) all() []entity.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Event{}, r.events...)
}

func (r *eventRecorder) topics() []entity.Topic {
	events := r.all()
	topics := make([]entity.Topic, 0, len(events))
	for _, event := range events {
		topics = append(topics, event.Topic)
	}

	return topics
}

func (r *eventRecorder) count(topic entity.Topic) int {
	n := 0
	for _, event := range r.all() {
		if event.Topic == topic {
			n++
		}
	}

	return n
}

func (r *eventRecorder) last(topic entity.Topic) (entity.Event, bool) {
	events := r.all()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Topic == topic {
			return events[i], true
		}
	}

	return entity.Event{}, false
}

// flowStates returns the states announced by deliveryFlowChanged events, in order.
func (r *eventRecorder) flowStates() []entity.FlowState {
	var states []entity.FlowState
	for _, event := range r.all() {
		if payload, ok := event.Payload.(entity.DeliveryFlowChangedPayload); ok {
			states = append(states, payload.State)
		}
	}

	return states
}

func (r *eventRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func eventually(t *testing.T, condition func() bool) {
	t.Helper()
	require.Eventually(t, condition, 2*time.Second, 5*time.Millisecond)
}
