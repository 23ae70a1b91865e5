// Package dateutils provides common date operations used throughout the
// application. The ledger stores calendar dates as ISO strings, so every
// helper here works in whole days.
package dateutils

import (
	"fmt"
	"time"
)

// DateLayoutISO is the canonical date layout of the ledger (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// MonthKeyLayout is the layout of calendar-month bucket keys (YYYY-MM).
const MonthKeyLayout = "2006-01"

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ParseISODate parses an ISO date string.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM bucket key for a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// PreviousMonth returns the first day of the calendar month before the one
// containing date. Crossing a year boundary is handled, so January maps to
// December of the previous year.
func PreviousMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, -1, 0)
}

// Truncate drops the time-of-day component, keeping the location.
func Truncate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
