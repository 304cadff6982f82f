package entity

// GuestWishlist is the ordered, duplicate-free set of product ids saved by a guest.
type GuestWishlist []string

// Contains reports whether productID is in the wishlist.
func (w GuestWishlist) Contains(productID string) bool {
	for _, id := range w {
		if id == productID {
			return true
		}
	}

	return false
}

// Dedupe returns ids without duplicates or blanks, keeping the first occurrence of each id.
func Dedupe(ids []string) GuestWishlist {
	seen := make(map[string]struct{}, len(ids))
	result := make(GuestWishlist, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
