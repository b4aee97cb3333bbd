package domain

// Identity is the logged-in shopper. Both fields are persisted together and
// cleared together, a partial identity never counts as logged in.
type Identity struct {
	UserID      string `json:"user_id"`
	HashedEmail string `json:"hashed_email"`
}

// IsLoggedIn requires both fields, one without the other reads as logged out.
func (i Identity) IsLoggedIn() bool {
	return i.UserID != "" && i.HashedEmail != ""
}

// DirectoryUser is one candidate identity in the static mock directory.
type DirectoryUser struct {
	UserID      string
	Email       string
	HashedEmail string
}
