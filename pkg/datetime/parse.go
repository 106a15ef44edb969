// Package datetime provides date parsing and arithmetic utilities.
package datetime

import (
	"fmt"
	"time"

	"github.com/paydown/paydown/pkg/constants"
)

// ParseMonth parses a month-granularity date in the 2006-01 layout.
func ParseMonth(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateTimeLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %s: %w", date, err)
	}
	return t, nil
}

// FormatMonth renders a date in the 2006-01 layout.
func FormatMonth(t time.Time) string {
	return t.Format(constants.DateTimeLayout)
}

// AddMonths advances t by the given number of calendar months, clamping the
// day to the end of the target month so Jan 31 + 1 month yields Feb 28 (or
// Feb 29 in leap years) rather than spilling into March.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	month += time.Month(months)
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthsBetween counts whole calendar months from start to end, ignoring the
// day component. A negative count means end precedes start.
func MonthsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*constants.MonthsPerYear + months
}

// daysInMonth returns the number of days in the given month; time.Date
// normalizes day 0 of the following month to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
