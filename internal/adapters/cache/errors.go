package cache

import "errors"

// Sentinel kinds for cache store errors.
var (
	// ErrUnavailable wraps failures to open or initialize the backing store.
	// Callers treat it as "no cache", never as fatal.
	ErrUnavailable = errors.New("cache store unavailable")
)
