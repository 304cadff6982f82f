package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// testPostgresConfig reads STOREFRONT_TEST_POSTGRES_* and skips when no host is set
func testPostgresConfig(t *testing.T) *config.Config {
	t.Helper()

	host := os.Getenv("STOREFRONT_TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("STOREFRONT_TEST_POSTGRES_HOST not set, skipping postgres integration test")
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}

		return fallback
	}

	cfg := &config.Config{
		Storage:  &config.StorageConfig{Backend: "postgres"},
		Postgres: &pgLib.DBConn{
			Master: pgLib.ConnectionConfig{
				Host:     host,
				Port:     env("STOREFRONT_TEST_POSTGRES_PORT", "5432"),
				UserName: env("STOREFRONT_TEST_POSTGRES_USER", "postgres"),
				Password: env("STOREFRONT_TEST_POSTGRES_PASSWORD", "postgres"),
			},
			Database: env("STOREFRONT_TEST_POSTGRES_DB", "storefront_test"),
		},
	}
	config.ApplyDefaults(cfg)

	return cfg
}

func createTestKVStore(t *testing.T) repository.KeyValueStore {
	t.Helper()

	cfg := testPostgresConfig(t)
	lc := fxtest.NewLifecycle(t)

	db, err := New(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	// a fresh prefix per test keeps parallel runs apart
	store, err := NewKVStore(context.Background(), db, "test-"+uuid.NewString()+"/")
	require.NoError(t, err)

	return store
}

func TestKVStore_RoundTrip(t *testing.T) {
	store := createTestKVStore(t)
	ctx := context.Background()
	key := repository.GuestCartKey("client-1")

	var missing []entity.CartLine
	assert.ErrorIs(t, store.Load(ctx, key, &missing), repository.ErrKeyNotFound)

	first := []entity.CartLine{{ProductID: "p1", Quantity: 1}}
	require.NoError(t, store.Save(ctx, key, first))

	var got []entity.CartLine
	require.NoError(t, store.Load(ctx, key, &got))
	assert.Equal(t, first, got)

	// a second save overwrites the same row
	second := []entity.CartLine{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Weight: "1kg", Quantity: 1}}
	require.NoError(t, store.Save(ctx, key, second))
	require.NoError(t, store.Load(ctx, key, &got))
	assert.Equal(t, second, got)

	require.NoError(t, store.Delete(ctx, key))
	assert.ErrorIs(t, store.Load(ctx, key, &got), repository.ErrKeyNotFound)

	// deleting a missing key is not an error
	require.NoError(t, store.Delete(ctx, key))
}

func TestKVStore_KeysAreIsolated(t *testing.T) {
	store := createTestKVStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.GuestWishlistKey("a"), []string{"w1"}))
	require.NoError(t, store.Save(ctx, repository.GuestWishlistKey("b"), []string{"w2", "w3"}))

	var a, b []string
	require.NoError(t, store.Load(ctx, repository.GuestWishlistKey("a"), &a))
	require.NoError(t, store.Load(ctx, repository.GuestWishlistKey("b"), &b))
	assert.Equal(t, []string{"w1"}, a)
	assert.Equal(t, []string{"w2", "w3"}, b)
}

func TestKVStore_ClosedConnectionIsDatabaseError(t *testing.T) {
	cfg := testPostgresConfig(t)
	lc := fxtest.NewLifecycle(t)

	db, err := New(Params{Lifecycle: lc, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	lc.RequireStart()

	store, err := NewKVStore(context.Background(), db, "test-"+uuid.NewString()+"/")
	require.NoError(t, err)
	lc.RequireStop()

	err = store.Save(context.Background(), "k", []string{"x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
