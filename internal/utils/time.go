package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/muhasabah/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// AddDays returns the date string offset by the given number of days.
func AddDays(dateStr string, days int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}

// StartOfWeek returns the Saturday on or before the given date. The tracked
// week runs Saturday through Friday.
func StartOfWeek(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	// time.Weekday has Sunday=0 ... Saturday=6; shift so Saturday=0.
	offset := (int(t.Weekday()) + 1) % 7
	return t.AddDate(0, 0, -offset).Format(constants.DateFormat), nil
}

// WeekDates returns the 7 consecutive date strings starting at startOfWeek.
func WeekDates(startOfWeek string) ([]string, error) {
	t, err := ParseDate(startOfWeek)
	if err != nil {
		return nil, err
	}
	dates := make([]string, constants.GateDaysPerWeek)
	for i := range dates {
		dates[i] = t.AddDate(0, 0, i).Format(constants.DateFormat)
	}
	return dates, nil
}

// DaysBetween returns the number of whole days from a to b (b - a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
