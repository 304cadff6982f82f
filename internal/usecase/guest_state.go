package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestStateStore owns the anonymous cart and wishlist of each client and their persisted mirror.
// Reads never fail: unreadable storage is treated as an empty collection.
type GuestStateStore interface {
	// Cart lines
	AddLine(ctx context.Context, clientID, productID string, quantity int, weight string, snapshot *entity.ProductSnapshot) error
	RemoveLine(ctx context.Context, clientID, productID, weight string) error
	SetQuantity(ctx context.Context, clientID, productID string, quantity int, weight string) error
	AdjustQuantity(ctx context.Context, clientID, productID, weight string, delta int) error
	ReplaceAll(ctx context.Context, clientID string, lines []entity.CartLine) error
	Lines(ctx context.Context, clientID string) []entity.CartLine

	// Wishlist
	AddWishlistItem(ctx context.Context, clientID, productID string) error
	RemoveWishlistItem(ctx context.Context, clientID, productID string) error
	ReplaceWishlist(ctx context.Context, clientID string, ids []string) error
	Wishlist(ctx context.Context, clientID string) entity.GuestWishlist

	// ClearAll empties both collections
	ClearAll(ctx context.Context, clientID string) error
}
