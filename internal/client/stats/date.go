package stats

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
)

// readDateFormat is lenient and accepts single-digit months and days.
const readDateFormat = "2006-1-2"

// ParseDate reads a calendar day as local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(readDateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", s, models.DateLayout, err)
	}
	return t, nil
}

// Today returns the local calendar day of now.
func Today(now time.Time) string {
	return now.In(time.Local).Format(models.DateLayout)
}

// AddDays moves a local calendar day by n days. Month and year rollovers
// are handled by time.Date normalization, so DST changes never skip or
// repeat a day.
func AddDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, day.Location())
}

// LastNDays returns n ascending ISO dates ending with fromISO.
func LastNDays(n int, fromISO string) ([]string, error) {
	from, err := ParseDate(fromISO)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		days = append(days, AddDays(from, -i).Format(models.DateLayout))
	}
	return days, nil
}

// WeekdayLabel returns the short weekday name of an ISO date, or the input
// itself when it cannot be parsed.
func WeekdayLabel(iso string) string {
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Weekday().String()[:3]
}
