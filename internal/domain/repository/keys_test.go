package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys_NamespacedByClient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc/guest_cart", GuestCartKey("abc"))
	assert.Equal(t, "abc/guest_wishlist", GuestWishlistKey("abc"))
	assert.Equal(t, "abc/location", LocationKey("abc"))
}
