package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-1"

func createTestGuestStore(t *testing.T) (*guestStateStore, repository.KeyValueStore) {
	t.Helper()

	store := newMemStore(t)
	guest := NewGuestStateStore(store, newTestConfig(), newDiscardLogger())

	return guest.(*guestStateStore), store
}

func TestGuestStateStore_AddLine_MergesSameKey(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "500g", nil))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 2, "500g", nil))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "1kg", nil))

	lines := guest.Lines(ctx, testClientID)
	require.Len(t, lines, 2)
	assert.Equal(t, entity.CartLine{ProductID: "p1", Weight: "500g", Quantity: 3}, lines[0])
	assert.Equal(t, entity.CartLine{ProductID: "p1", Weight: "1kg", Quantity: 1}, lines[1])
}

func TestGuestStateStore_AddLine_WeightNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []string
	}{
		{name: "empty and N/A", weights: []string{"", "N/A"}},
		{name: "lowercase n/a and blank", weights: []string{"n/a", "   "}},
		{name: "padded N/A", weights: []string{" N/A ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			guest, _ := createTestGuestStore(t)
			ctx := context.Background()

			for _, weight := range tt.weights {
				require.NoError(t, guest.AddLine(ctx, testClientID, "bread", 1, weight, nil))
			}

			lines := guest.Lines(ctx, testClientID)
			require.Len(t, lines, 1)
			assert.Equal(t, "", lines[0].Weight)
			assert.Equal(t, len(tt.weights), lines[0].Quantity)
		})
	}
}

func TestGuestStateStore_AddLine_DefaultsQuantity(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 0, "", nil))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", -4, "", nil))

	lines := guest.Lines(ctx, testClientID)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestGuestStateStore_AddLine_KeepsFirstSnapshot(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	first := &entity.ProductSnapshot{ID: "p1", Name: "Sourdough", Price: 250}
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "", first))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "", &entity.ProductSnapshot{ID: "p1", Name: "Renamed"}))

	first.Name = "mutated by caller"

	lines := guest.Lines(ctx, testClientID)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, "Sourdough", lines[0].Product.Name)
}

func TestGuestStateStore_SetQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity int
		want     []entity.CartLine
	}{
		{
			name:     "positive replaces quantity",
			quantity: 7,
			want:     []entity.CartLine{{ProductID: "p1", Weight: "500g", Quantity: 7}},
		},
		{name: "zero removes line", quantity: 0, want: []entity.CartLine{}},
		{name: "negative removes line", quantity: -1, want: []entity.CartLine{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			guest, _ := createTestGuestStore(t)
			ctx := context.Background()

			require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 2, "500g", nil))
			require.NoError(t, guest.SetQuantity(ctx, testClientID, "p1", tt.quantity, "500g"))

			assert.Equal(t, tt.want, guest.Lines(ctx, testClientID))
		})
	}
}

func TestGuestStateStore_SetQuantity_MissingLineIsNoop(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.SetQuantity(ctx, testClientID, "ghost", 3, ""))
	assert.Empty(t, guest.Lines(ctx, testClientID))
}

func TestGuestStateStore_AdjustQuantity(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "", nil))
	require.NoError(t, guest.AdjustQuantity(ctx, testClientID, "p1", "N/A", 1))
	assert.Equal(t, 2, guest.Lines(ctx, testClientID)[0].Quantity)

	require.NoError(t, guest.AdjustQuantity(ctx, testClientID, "p1", "", -1))
	require.NoError(t, guest.AdjustQuantity(ctx, testClientID, "p1", "", -1))
	assert.Empty(t, guest.Lines(ctx, testClientID))
}

func TestGuestStateStore_ReplaceAll_MergesDuplicates(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.ReplaceAll(ctx, testClientID, []entity.CartLine{
		{ProductID: "p1", Weight: "N/A", Quantity: 1},
		{ProductID: "p1", Weight: "", Quantity: 2},
		{ProductID: "p2", Quantity: 0},
		{ProductID: "", Quantity: 3},
	}))

	assert.Equal(t, []entity.CartLine{{ProductID: "p1", Weight: "", Quantity: 3}}, guest.Lines(ctx, testClientID))
}

func TestGuestStateStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	guest, store := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 2, "500g", nil))
	require.NoError(t, guest.AddWishlistItem(ctx, testClientID, "w1"))

	reopened := NewGuestStateStore(store, newTestConfig(), newDiscardLogger())

	assert.Equal(t, []entity.CartLine{{ProductID: "p1", Weight: "500g", Quantity: 2}}, reopened.Lines(ctx, testClientID))
	assert.Equal(t, entity.GuestWishlist{"w1"}, reopened.Wishlist(ctx, testClientID))
}

func TestGuestStateStore_ClientsAreIsolated(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, "a", "p1", 1, "", nil))
	require.NoError(t, guest.AddWishlistItem(ctx, "b", "w1"))

	assert.Len(t, guest.Lines(ctx, "a"), 1)
	assert.Empty(t, guest.Lines(ctx, "b"))
	assert.Empty(t, guest.Wishlist(ctx, "a"))
	assert.Equal(t, entity.GuestWishlist{"w1"}, guest.Wishlist(ctx, "b"))
}

func TestGuestStateStore_Wishlist(t *testing.T) {
	t.Parallel()

	guest, _ := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddWishlistItem(ctx, testClientID, "w1"))
	require.NoError(t, guest.AddWishlistItem(ctx, testClientID, "w2"))
	require.NoError(t, guest.AddWishlistItem(ctx, testClientID, "w1"))
	assert.Equal(t, entity.GuestWishlist{"w1", "w2"}, guest.Wishlist(ctx, testClientID))

	require.NoError(t, guest.RemoveWishlistItem(ctx, testClientID, "w1"))
	require.NoError(t, guest.RemoveWishlistItem(ctx, testClientID, "missing"))
	assert.Equal(t, entity.GuestWishlist{"w2"}, guest.Wishlist(ctx, testClientID))

	require.NoError(t, guest.ReplaceWishlist(ctx, testClientID, []string{"x", "", "y", "x"}))
	assert.Equal(t, entity.GuestWishlist{"x", "y"}, guest.Wishlist(ctx, testClientID))
}

func TestGuestStateStore_ClearAll(t *testing.T) {
	t.Parallel()

	guest, store := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "", nil))
	require.NoError(t, guest.AddWishlistItem(ctx, testClientID, "w1"))
	require.NoError(t, guest.ClearAll(ctx, testClientID))

	assert.Empty(t, guest.Lines(ctx, testClientID))
	assert.Empty(t, guest.Wishlist(ctx, testClientID))

	var persisted []entity.CartLine
	require.NoError(t, store.Load(ctx, repository.GuestCartKey(testClientID), &persisted))
	assert.Empty(t, persisted)
}

func TestGuestStateStore_ScenarioA(t *testing.T) {
	t.Parallel()

	guest, store := createTestGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "500g", nil))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 2, "500g", nil))
	require.NoError(t, guest.AddLine(ctx, testClientID, "p1", 1, "1kg", nil))
	require.NoError(t, guest.SetQuantity(ctx, testClientID, "p1", 0, "500g"))

	want := []entity.CartLine{{ProductID: "p1", Weight: "1kg", Quantity: 1}}
	assert.Equal(t, want, guest.Lines(ctx, testClientID))
	assert.Equal(t, 1, entity.TotalQuantity(guest.Lines(ctx, testClientID)))

	var persisted []entity.CartLine
	require.NoError(t, store.Load(ctx, repository.GuestCartKey(testClientID), &persisted))
	assert.Equal(t, want, persisted)
}

func TestGuestStateStore_UnreadableStorageStartsEmpty(t *testing.T) {
	t.Parallel()

	store := mockRepo.NewMockKeyValueStore(t)
	guest := NewGuestStateStore(store, newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().
		Load(mock.Anything, repository.GuestCartKey(testClientID), mock.Anything).
		Return(errors.New("corrupt record")).
		Once()
	store.EXPECT().
		Load(mock.Anything, repository.GuestWishlistKey(testClientID), mock.Anything).
		Return(repository.ErrKeyNotFound).
		Once()

	assert.Empty(t, guest.Lines(ctx, testClientID))
	assert.Empty(t, guest.Wishlist(ctx, testClientID))
}

func TestGuestStateStore_WriteFailureKeepsHotCopy(t *testing.T) {
	t.Parallel()

	store := mockRepo.NewMockKeyValueStore(t)
	guest := NewGuestStateStore(store, newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	store.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrKeyNotFound).Times(2)
	store.EXPECT().
		Save(mock.Anything, repository.GuestCartKey(testClientID), mock.Anything).
		Return(errors.New("disk full")).
		Once()

	err := guest.AddLine(ctx, testClientID, "p1", 1, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, []entity.CartLine{{ProductID: "p1", Quantity: 1}}, guest.Lines(ctx, testClientID))
}
