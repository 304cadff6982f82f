package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// RemoteAddRequest is the add-to-cart body the cart service expects; quantity travels as a string.
type RemoteAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
}

// RemoteCartService is the server-backed cart of an authenticated user.
// credential is forwarded verbatim as a bearer token.
type RemoteCartService interface {
	// AddItem adds a product and returns the service's response as is.
	AddItem(ctx context.Context, credential string, req RemoteAddRequest) (*entity.CartMutationResult, error)

	// GetCart returns the raw response body; envelope normalization is the caller's job.
	GetCart(ctx context.Context, credential string) ([]byte, error)

	// UpdateQuantity steps the quantity of productID by one in the given direction.
	UpdateQuantity(ctx context.Context, credential, productID string, action entity.QuantityAction) error

	// RemoveItem deletes productID from the cart.
	RemoveItem(ctx context.Context, credential, productID string) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, credential string) error
}

// RemoteWishlistService is the server-backed wishlist of an authenticated user.
type RemoteWishlistService interface {
	// GetWishlist returns the raw response body.
	GetWishlist(ctx context.Context, credential string) ([]byte, error)

	// AddWishlistItem saves productID.
	AddWishlistItem(ctx context.Context, credential, productID string) error

	// RemoveWishlistItem drops productID.
	RemoveWishlistItem(ctx context.Context, credential, productID string) error
}
