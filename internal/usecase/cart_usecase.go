package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddItemInput represents the input for adding a product to the cart
type AddItemInput struct {
	ProductID string                  `json:"productId" validate:"required"`
	Quantity  int                     `json:"quantity"`
	Weight    string                  `json:"weight"`
	Product   *entity.ProductSnapshot `json:"product,omitempty"`
}

// QuantityInput identifies the line whose quantity is stepped
type QuantityInput struct {
	ProductID string `json:"productId" validate:"required"`
	Weight    string `json:"weight"`
}

// CartUsecase is one cart API for guests and signed-in users.
// The path is chosen on every call from session.HasCredential().
type CartUsecase interface {
	AddItem(ctx context.Context, session entity.SessionContext, input AddItemInput) (*entity.CartMutationResult, error)
	GetItems(ctx context.Context, session entity.SessionContext) ([]entity.CartLine, error)
	IncreaseQuantity(ctx context.Context, session entity.SessionContext, productID, weight string) error
	DecreaseQuantity(ctx context.Context, session entity.SessionContext, productID, weight string) error
	RemoveItem(ctx context.Context, session entity.SessionContext, productID, weight string) error
	Clear(ctx context.Context, session entity.SessionContext) error

	// Count is the total quantity across all lines, recomputed on every call
	Count(ctx context.Context, session entity.SessionContext) (int, error)
}
