package redis

import "errors"

// ErrStorageUnavailable wraps any Redis-level failure so callers can treat a
// broken store as one recoverable condition instead of handling driver errors.
var ErrStorageUnavailable = errors.New("storage unavailable")
