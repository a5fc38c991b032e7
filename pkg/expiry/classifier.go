package expiry

import (
	"math"
	"time"
)

type Category string

const (
	Fresh        Category = "fresh"
	ExpiringSoon Category = "expiring-soon"
	Expired      Category = "expired"
	Unknown      Category = "unknown"
)

// Items with 7 or fewer remaining days count as expiring-soon, not fresh.
const expiringSoonWindowDays = 7

// Classify converts an item's recording time and shelf-life estimate into a
// freshness category. Both inputs are required for a non-unknown result; the
// caller injects the clock.
func Classify(createdAt *time.Time, daysUntilExpiry *int, now time.Time) Category {
	if createdAt == nil || daysUntilExpiry == nil {
		return Unknown
	}

	expiresAt := createdAt.AddDate(0, 0, *daysUntilExpiry)
	remainingDays := int(math.Round(expiresAt.Sub(now).Hours() / 24))

	switch {
	case remainingDays <= 0:
		return Expired
	case remainingDays <= expiringSoonWindowDays:
		return ExpiringSoon
	default:
		return Fresh
	}
}
