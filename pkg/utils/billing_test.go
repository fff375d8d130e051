package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBillingDateClampsShortMonths(t *testing.T) {
	// Jan 31 -> Feb 28 in a non-leap year.
	created := time.Date(2025, time.January, 31, 9, 30, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2025, time.February, 28, 9, 30, 0, 0, time.UTC),
		NextBillingDate(created))

	// Jan 31 -> Feb 29 in a leap year.
	created = time.Date(2024, time.January, 31, 9, 30, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2024, time.February, 29, 9, 30, 0, 0, time.UTC),
		NextBillingDate(created))
}

func TestNextBillingDateSameDayWhenItFits(t *testing.T) {
	created := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
		NextBillingDate(created))

	created = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC),
		NextBillingDate(created))
}

func TestNextBillingDateYearRollover(t *testing.T) {
	created := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t,
		time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC),
		NextBillingDate(created))
}

func TestNextBillingDatePreservesTimeOfDay(t *testing.T) {
	created := time.Date(2025, time.May, 31, 4, 17, 33, 500, time.UTC)
	next := NextBillingDate(created)

	assert.Equal(t, time.June, next.Month())
	assert.Equal(t, 30, next.Day())
	assert.Equal(t, 4, next.Hour())
	assert.Equal(t, 17, next.Minute())
	assert.Equal(t, 33, next.Second())
}
