package domain

// WishlistEntry is a snapshot copy of a product, no quantity, no list
// placement. The wishlist is a set keyed by item_id.
type WishlistEntry Product

// Wishlist is an ordered sequence of entries with unique item ids.
type Wishlist struct {
	Entries []WishlistEntry `json:"entries"`
}

// Contains reports whether an entry with the given item id exists.
func (w *Wishlist) Contains(itemID string) bool {
	for _, entry := range w.Entries {
		if entry.ItemID == itemID {
			return true
		}
	}
	return false
}
