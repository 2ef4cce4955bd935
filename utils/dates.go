package utils

import (
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// ParseDate accepts the date formats the dashboard sends: a plain date or a
// full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ParseDateEnd parses an upper range bound. A plain date is extended to the
// last instant of that day so the bound stays inclusive of calls logged with
// a time of day.
func ParseDateEnd(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	return time.Parse(time.RFC3339, s)
}
