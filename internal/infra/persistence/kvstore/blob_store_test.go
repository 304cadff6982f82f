package kvstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestBlobStore(t *testing.T) (repository.KeyValueStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	return store, bucket
}

func TestBlobStore_SaveAndLoad(t *testing.T) {
	store, _ := createTestBlobStore(t)
	ctx := context.Background()

	lines := []entity.CartLine{{ProductID: "SKU1", Weight: "500g", Quantity: 2}}
	require.NoError(t, store.Save(ctx, repository.GuestCartKey("c1"), lines))

	var loaded []entity.CartLine
	require.NoError(t, store.Load(ctx, repository.GuestCartKey("c1"), &loaded))
	assert.Equal(t, lines, loaded)
}

func TestBlobStore_LoadMissingKey(t *testing.T) {
	store, _ := createTestBlobStore(t)

	var loaded []string
	err := store.Load(context.Background(), "missing", &loaded)

	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_LoadCorruptValue(t *testing.T) {
	store, bucket := createTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, "c1/guest_wishlist", []byte("{not json"), nil))

	var loaded []string
	err := store.Load(ctx, "c1/guest_wishlist", &loaded)

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_Delete(t *testing.T) {
	store, _ := createTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []string{"a"}))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	var loaded []string
	assert.ErrorIs(t, store.Load(ctx, "k", &loaded), repository.ErrKeyNotFound)
}

func TestOpenBlobStore_PrefixesKeys(t *testing.T) {
	ctx := context.Background()

	store, err := OpenBlobStore(ctx, "mem://", "storefront/", newDiscardLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "c1/location", entity.StoredLocation{Lat: 1, Long: 2}))

	var loaded entity.StoredLocation
	require.NoError(t, store.Load(ctx, "c1/location", &loaded))
	assert.Equal(t, entity.StoredLocation{Lat: 1, Long: 2}, loaded)
}
