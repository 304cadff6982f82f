// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignInResult reports how much guest state reached the account
type SignInResult struct {
	MergedLines     int  `json:"mergedLines"`
	FailedLines     int  `json:"failedLines"`
	MergedWishlist  int  `json:"mergedWishlist"`
	FailedWishlist  int  `json:"failedWishlist"`
	GuestStateClean bool `json:"guestStateClean"`
}

// SessionUsecase handles the guest to account transitions of a client
type SessionUsecase interface {
	// SignIn moves the guest cart and wishlist into the account the credential belongs to
	SignIn(ctx context.Context, session entity.SessionContext) (*SignInResult, error)

	// SignOut drops the client back to an empty guest state
	SignOut(ctx context.Context, session entity.SessionContext) error
}
