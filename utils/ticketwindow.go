package utils

import "time"

// All ticket validity arithmetic runs in UTC. Every call site (issuance,
// update, sweep, redemption) goes through these functions; "now" is always
// passed in so callers and tests agree on the evaluation instant.

// DayWindow returns the first and last instant of the given calendar day in UTC.
func DayWindow(day time.Time) (start, end time.Time) {
	u := day.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPastDay reports whether day's validity window has fully elapsed at now,
// i.e. the whole calendar day lies strictly before now's day.
func IsPastDay(day, now time.Time) bool {
	_, end := DayWindow(day)
	return end.Before(StartOfDay(now))
}

// StatusFor computes the status a ticket valid on day must have at now,
// ignoring redemption: EXPIRED once now is past the end of the window,
// ACTIVE otherwise (a not-yet-valid ticket stays ACTIVE).
func StatusFor(day, now time.Time) string {
	_, end := DayWindow(day)
	if now.UTC().After(end) {
		return "EXPIRED"
	}
	return "ACTIVE"
}

// SameCalendarDay reports whether a and b fall on the same UTC calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
