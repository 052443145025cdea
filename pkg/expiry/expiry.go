// Package expiry classifies foods by how far their expiry date is from today.
package expiry

import (
	"math"
	"time"
)

const (
	StatusExpired      = "expired"
	StatusExpiringSoon = "expiring-soon"
	StatusSafe         = "safe"

	// SoonThresholdDays is the last day count still reported as expiring-soon.
	SoonThresholdDays = 3
)

type Result struct {
	Status string
	// Days is days remaining for upcoming foods and days overdue for expired ones.
	Days int
}

// Date returns midnight UTC of the calendar date t has in its own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the signed number of calendar days from now to expiryDate.
func DaysUntil(expiryDate, now time.Time) int {
	diff := Date(expiryDate).Sub(Date(now))
	return int(math.Ceil(diff.Hours() / 24))
}

func Classify(expiryDate, now time.Time) Result {
	diffDays := DaysUntil(expiryDate, now)

	switch {
	case diffDays < 0:
		return Result{Status: StatusExpired, Days: -diffDays}
	case diffDays <= SoonThresholdDays:
		return Result{Status: StatusExpiringSoon, Days: diffDays}
	default:
		return Result{Status: StatusSafe, Days: diffDays}
	}
}

// Bounds returns today's date and the last date still classified as
// expiring-soon. Foods before today are expired, foods after soon are safe.
func Bounds(now time.Time) (today, soon time.Time) {
	today = Date(now)
	return today, today.AddDate(0, 0, SoonThresholdDays)
}
