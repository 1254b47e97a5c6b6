package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// Accepted layouts. Year-first layouts are unambiguous; the slash layout
// without a leading year is read as month/day/year.
var dateLayouts = []string{
	"2006-01-02",
	"2006/1/2",
	"1/2/2006",
}

// ParseDate parses s as a calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, time.UTC)
}

// ParseDateIn parses s as a calendar date in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected 2006-01-02, 2006/1/2 or 1/2/2006", ErrInvalidDate, s)
}
