package catalog

import (
	"errors"
	"fmt"
)

// Sentinel kinds for catalog client errors.
var (
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// HTTPError reports a page request that came back with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog: unexpected status %d from %s", e.StatusCode, e.URL)
}

// FormatError reports a page body that is neither a record array nor an
// envelope with an extractable results array.
type FormatError struct {
	URL    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog: bad page body from %s: %s", e.URL, e.Reason)
}
