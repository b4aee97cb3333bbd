package domain

// Event names pushed to the dataLayer, matching the GA4 e-commerce schema.
const (
	EventAddToCart          = "add_to_cart"
	EventRemoveFromCart     = "remove_from_cart"
	EventAddToWishlist      = "add_to_wishlist"
	EventRemoveFromWishlist = "remove_from_wishlist"
	EventLogin              = "login"
	EventLogout             = "logout"
)

const (
	CurrencyUSD      = "USD"
	LoginMethodEmail = "Email"
)

// CartEcommerce is the ecommerce block for cart events. Items holds only the
// affected line item, never the whole cart.
type CartEcommerce struct {
	Currency string         `json:"currency"`
	Value    float64        `json:"value"`
	Items    []CartLineItem `json:"items"`
}

type CartEvent struct {
	Event     string        `json:"event"`
	Ecommerce CartEcommerce `json:"ecommerce"`
}

// WishlistEcommerce carries the product snapshot at its catalog price.
type WishlistEcommerce struct {
	Currency string    `json:"currency"`
	Value    float64   `json:"value"`
	Items    []Product `json:"items"`
}

type WishlistEvent struct {
	Event     string            `json:"event"`
	Ecommerce WishlistEcommerce `json:"ecommerce"`
}

type LoginEvent struct {
	Event       string `json:"event"`
	LoginMethod string `json:"login_method"`
	UserID      string `json:"user_id"`
	HashedEmail string `json:"hashed_email"`
}

type LogoutEvent struct {
	Event string `json:"event"`
}

// IdentityRecord is the bare page-load bootstrap record. It intentionally has
// no event field so a concurrently firing page_view can be enriched with it.
type IdentityRecord struct {
	UserID      string `json:"user_id"`
	HashedEmail string `json:"hashed_email"`
}
