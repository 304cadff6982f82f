package repository

import "storefront/internal/domain/constants"

// Key namespaces name under clientID so each browser owns exactly one key per collection
func Key(clientID, name string) string {
	return clientID + "/" + name
}

// GuestCartKey is where a client's guest cart lines live
func GuestCartKey(clientID string) string {
	return Key(clientID, constants.KeyGuestCart)
}

// GuestWishlistKey is where a client's guest wishlist ids live
func GuestWishlistKey(clientID string) string {
	return Key(clientID, constants.KeyGuestWishlist)
}

// LocationKey is where a client's confirmed delivery location lives
func LocationKey(clientID string) string {
	return Key(clientID, constants.KeyLocation)
}
