package expiry

import (
	"testing"
	"time"
)

func TestClassifyMissingInputs(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -2)
	days := 5

	if got := Classify(nil, &days, now); got != Unknown {
		t.Fatalf("expected unknown without createdAt, got %s", got)
	}
	if got := Classify(&createdAt, nil, now); got != Unknown {
		t.Fatalf("expected unknown without daysUntilExpiry, got %s", got)
	}
	if got := Classify(nil, nil, now); got != Unknown {
		t.Fatalf("expected unknown without both inputs, got %s", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		remainingDays int
		want          Category
	}{
		{"expired today", 0, Expired},
		{"expired last week", -5, Expired},
		{"one day left", 1, ExpiringSoon},
		{"exactly seven days", 7, ExpiringSoon},
		{"eight days", 8, Fresh},
		{"a month out", 30, Fresh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Record the item now with a shelf life that lands the
			// expiry instant exactly remainingDays from the clock.
			createdAt := now
			days := tc.remainingDays
			if days < 0 {
				createdAt = now.AddDate(0, 0, days)
				days = 0
			}
			if got := Classify(&createdAt, &days, now); got != tc.want {
				t.Fatalf("remaining=%d: expected %s, got %s", tc.remainingDays, tc.want, got)
			}
		})
	}
}

func TestClassifyRoundsToNearestDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Expiry instant 6 hours from now rounds to zero remaining days.
	createdAt := now.Add(-24*time.Hour + 6*time.Hour)
	days := 1
	if got := Classify(&createdAt, &days, now); got != Expired {
		t.Fatalf("expected expired for quarter-day remainder, got %s", got)
	}

	// Expiry instant 18 hours out rounds up to one remaining day.
	createdAt = now.Add(-6 * time.Hour)
	if got := Classify(&createdAt, &days, now); got != ExpiringSoon {
		t.Fatalf("expected expiring-soon for three-quarter-day remainder, got %s", got)
	}
}
