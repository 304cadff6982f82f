package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase is one wishlist API for guests and signed-in users
type WishlistUsecase interface {
	Items(ctx context.Context, session entity.SessionContext) ([]string, error)
	Add(ctx context.Context, session entity.SessionContext, productID string) error
	Remove(ctx context.Context, session entity.SessionContext, productID string) error
	Contains(ctx context.Context, session entity.SessionContext, productID string) (bool, error)
	Count(ctx context.Context, session entity.SessionContext) (int, error)
}
