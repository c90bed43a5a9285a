package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(time.Date(2026, 7, 15, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 7, 15, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestDayWindowNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 01:00 on the 16th in UTC+7 is still the 15th in UTC.
	start, _ := DayWindow(time.Date(2026, 7, 16, 1, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestIsPastDay(t *testing.T) {
	day := date(2026, 7, 15)

	// Any instant inside the day itself: not past.
	assert.False(t, IsPastDay(day, time.Date(2026, 7, 15, 23, 59, 59, 0, time.UTC)))
	// The whole following day: past.
	assert.True(t, IsPastDay(day, time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsPastDay(day, time.Date(2026, 7, 16, 12, 0, 0, 0, time.UTC)))
	// Earlier days: not past.
	assert.False(t, IsPastDay(day, time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)))
}

func TestStatusFor(t *testing.T) {
	day := date(2026, 7, 15)

	// Future validity stays ACTIVE, never a separate pending state.
	assert.Equal(t, "ACTIVE", StatusFor(day, date(2026, 7, 10)))
	// On the day itself.
	assert.Equal(t, "ACTIVE", StatusFor(day, time.Date(2026, 7, 15, 23, 59, 59, 999_000_000, time.UTC)))
	// First instant after the window end.
	assert.Equal(t, "EXPIRED", StatusFor(day, time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "EXPIRED", StatusFor(day, date(2026, 8, 1)))
}

func TestStatusForAgreesWithIsPastDay(t *testing.T) {
	day := date(2026, 7, 15)
	instants := []time.Time{
		date(2026, 7, 14),
		date(2026, 7, 15),
		time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC),
		date(2026, 7, 16),
		date(2026, 7, 17),
	}

	// Whenever the day is fully past, the derived status must be EXPIRED.
	for _, now := range instants {
		if IsPastDay(day, now) {
			assert.Equal(t, "EXPIRED", StatusFor(day, now), "at %v", now)
		}
	}
}

func TestSameCalendarDay(t *testing.T) {
	assert.True(t, SameCalendarDay(
		time.Date(2026, 7, 15, 0, 0, 1, 0, time.UTC),
		time.Date(2026, 7, 15, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, SameCalendarDay(
		time.Date(2026, 7, 15, 23, 59, 0, 0, time.UTC),
		time.Date(2026, 7, 16, 0, 0, 1, 0, time.UTC),
	))

	// Zones are normalized before comparison.
	loc := time.FixedZone("UTC-5", -5*3600)
	assert.True(t, SameCalendarDay(
		time.Date(2026, 7, 15, 20, 0, 0, 0, loc), // 01:00 on the 16th UTC
		time.Date(2026, 7, 16, 1, 0, 0, 0, time.UTC),
	))
}
