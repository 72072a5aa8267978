// Package util holds calendar-date helpers shared by the donation flow.
package util

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the YYYY-MM-DD layout used for donation dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a calendar date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return date, nil
}

// CalendarDate returns t's date as seen in t's own location, expressed at UTC midnight.
// Two instants on the same local day map to the same value.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
