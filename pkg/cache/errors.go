package cache

import "errors"

// Sentinel errors for caching operations. Misses are not errors: Get
// reports them through its bool return.
var (
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("cache unavailable")
)
