package utils

import "time"

// NextBillingDate returns same-day-next-calendar-month in UTC, clamping the
// day to the target month's length so Jan 31 bills on Feb 28 (29 in leap
// years) rather than rolling into March. Time of day is preserved.
func NextBillingDate(createdAt time.Time) time.Time {
	t := createdAt.UTC()
	year, month, day := t.Date()

	targetMonth := month + 1
	targetYear := year
	if targetMonth > time.December {
		targetMonth = time.January
		targetYear++
	}

	if max := daysInMonth(targetYear, targetMonth); day > max {
		day = max
	}

	return time.Date(targetYear, targetMonth, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
