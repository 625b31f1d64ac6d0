// Package freshness decides whether a cached snapshot is still usable.
package freshness

import "time"

// DefaultMaxAgeMonths is the cache validity window used across the system.
const DefaultMaxAgeMonths = 3

// IsFresh reports whether a snapshot saved at savedAt is still usable at
// now. A zero savedAt is never fresh. The boundary is inclusive: an entry
// saved exactly maxAgeMonths calendar months ago is still fresh. Month
// arithmetic uses AddDate, so the cutoff day normalizes across month-end
// boundaries the same way the calendar does.
func IsFresh(savedAt, now time.Time, maxAgeMonths int) bool {
	if savedAt.IsZero() {
		return false
	}
	cutoff := now.AddDate(0, -maxAgeMonths, 0)
	return !savedAt.Before(cutoff)
}
