package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/geolocation"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDeliveryService(t *testing.T, idleTTL time.Duration) (*deliveryService, *mockRepo.MockLocationCache, *eventRecorder) {
	t.Helper()

	bus, events := newRecordedBus()
	cache := mockRepo.NewMockLocationCache(t)
	srv := newDeliveryService(flowDeps{
		resolver:  mockService.NewMockPlaceResolver(t),
		checker:   mockService.NewMockServiceabilityChecker(t),
		cache:     cache,
		positions: geolocation.NewPositionCacheWithTTL(time.Minute),
		bus:       bus,
		logger:    newDiscardLogger(),
	}, testFlowSettings(), idleTTL)
	t.Cleanup(srv.Shutdown)

	return srv, cache, events
}

func TestDeliveryService_FlowPerClient(t *testing.T) {
	t.Parallel()

	srv, _, _ := createTestDeliveryService(t, time.Minute)

	a := srv.Flow("a")
	assert.Same(t, a, srv.Flow("a"))
	assert.NotSame(t, a, srv.Flow("b"))

	a.Open()
	assert.True(t, srv.Flow("a").Snapshot().Open)
	assert.False(t, srv.Flow("b").Snapshot().Open)
}

func TestDeliveryService_CurrentLocation(t *testing.T) {
	t.Parallel()

	srv, cache, _ := createTestDeliveryService(t, time.Minute)
	stored := entity.StoredLocation{Lat: 26.85, Long: 80.94, Label: "Hazratganj"}

	cache.EXPECT().Get(context.Background(), "a").Return(stored, nil).Once()

	location, err := srv.CurrentLocation(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, stored, location)
}

func TestDeliveryService_ShutdownClosesFlows(t *testing.T) {
	t.Parallel()

	srv, _, _ := createTestDeliveryService(t, time.Minute)

	flow := srv.Flow("a")
	flow.Open()
	srv.Shutdown()

	assert.False(t, flow.Snapshot().Open)
	assert.NotSame(t, flow, srv.Flow("a"))
}

func TestDeliveryService_IdleFlowsAreEvicted(t *testing.T) {
	t.Parallel()

	srv, _, _ := createTestDeliveryService(t, 20*time.Millisecond)

	flow := srv.Flow("a")
	flow.Open()

	eventually(t, func() bool { return !flow.Snapshot().Open })
}
