// Package dates provides the calendar bucketing and display helpers used by
// the event listing filters: day/week/month ranges, past-date checks and
// locale-aware rendering for es, en and de.
package dates

import (
	"fmt"
	"time"
)

// Granularity is the bucket size for Range.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity parses a query-string value into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("invalid range %q: must be day, week or month", s)
}

// Range returns the inclusive start and end instants of the day, week or
// month containing ref, in ref's location. Weeks start on Monday; a Sunday
// belongs to the week begun the prior Monday. Ends are at 23:59:59.999 so
// callers can filter with ">= start AND <= end".
func Range(ref time.Time, g Granularity) (time.Time, time.Time) {
	switch g {
	case GranularityWeek:
		offset := int(ref.Weekday()) - 1
		if ref.Weekday() == time.Sunday {
			offset = 6
		}
		monday := ref.AddDate(0, 0, -offset)
		return StartOfDay(monday), endOfDay(monday.AddDate(0, 0, 6))
	case GranularityMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		// Day zero of the next month normalizes to this month's last day.
		last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())
		return first, endOfDay(last)
	default:
		return StartOfDay(ref), endOfDay(ref)
	}
}

// StartOfDay returns t at 00:00:00.000 in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// IsPast reports whether t falls on a calendar day strictly before now's.
// Both instants are truncated to midnight first, so today is not past.
func IsPast(t, now time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(now))
}

// ParseDay parses a "YYYY-MM-DD" date string. Malformed input fails here
// rather than propagating an invalid instant into comparisons.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
