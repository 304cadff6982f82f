package kvstore

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCache_DefaultWhenEmpty(t *testing.T) {
	store, _ := createTestBlobStore(t)
	cache := NewLocationCache(store, newDiscardLogger())

	location, err := cache.Get(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStoredLocation(), location)
	assert.Empty(t, location.Label)
}

func TestLocationCache_SaveOverwritesSingleRecord(t *testing.T) {
	store, _ := createTestBlobStore(t)
	cache := NewLocationCache(store, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "c1", entity.StoredLocation{Lat: 1, Long: 2, Label: "First"}))
	require.NoError(t, cache.Save(ctx, "c1", entity.StoredLocation{Lat: 3, Long: 4, Label: "Second"}))

	location, err := cache.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.StoredLocation{Lat: 3, Long: 4, Label: "Second"}, location)

	other, err := cache.Get(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStoredLocation(), other)
}

func TestLocationCache_CorruptRecordFallsBackToDefault(t *testing.T) {
	store, bucket := createTestBlobStore(t)
	cache := NewLocationCache(store, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, repository.LocationKey("c1"), []byte(`"oops`), nil))

	location, err := cache.Get(ctx, "c1")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStoredLocation(), location)
}
