package utils

import (
	"math"
	"time"
)

// TruncateToDay normalizes a moment to its calendar date (midnight UTC).
// All rental date arithmetic happens on day boundaries.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OriginalPrice is the price agreed at creation time: the game's daily price
// times the rented duration. It is stored on the rental and never recomputed,
// so later price changes to the game do not affect existing rentals.
func OriginalPrice(pricePerDay int64, daysRented int) int64 {
	return pricePerDay * int64(daysRented)
}

// DueDate is the calendar date by which the rental is expected back.
func DueDate(rentDate time.Time, daysRented int) time.Time {
	return rentDate.AddDate(0, 0, daysRented)
}

// LateDays returns how many whole days past due the rental is on the given
// day. Zero or negative means on time or early.
func LateDays(rentDate time.Time, daysRented int, today time.Time) int {
	due := DueDate(rentDate, daysRented)
	return int(math.Round(today.Sub(due).Hours() / 24))
}

// DelayFee charges the full original price once per late day. Charging the
// total price rather than the per-day price is the established business rule
// for this system; do not change it without product sign-off.
func DelayFee(lateDays int, originalPrice int64) int64 {
	if lateDays > 0 {
		return int64(lateDays) * originalPrice
	}
	return 0
}
