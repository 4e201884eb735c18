package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// DayOf truncates t to the beginning of its calendar day. All check-in,
// check-out and block boundaries are stored at day precision.
func DayOf(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// ParseDay parses a yyyy-mm-dd date string into a day-precision time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}

// NightsBetween counts the nights in [checkIn, checkOut). Returns 0 or a
// negative value for empty or inverted ranges; callers reject those.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DayOf(checkOut).Sub(DayOf(checkIn)).Hours() / 24)
}

// RangesOverlap reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back ranges do not overlap since
// check-out day is exclusive.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
