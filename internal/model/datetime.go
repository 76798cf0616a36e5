package model

import (
	"strings"
	"time"
)

// Date/time layouts used by the backend
const (
	// RequestDateTimeLayout is the layout sent in appointment requests
	RequestDateTimeLayout = "2006-01-02 15:04:05"

	// DisplayDateTimeLayout is the layout shown in tables and entries
	DisplayDateTimeLayout = "2006-01-02 15:04"

	// DateLayout is the layout of prescription dates
	DateLayout = "2006-01-02"
)

// acceptedLayouts are tried in order by ParseDateTime
var acceptedLayouts = []string{
	DisplayDateTimeLayout,
	RequestDateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	DateLayout,
}

// ParseDateTime parses any of the date/time shapes the backend emits.
// Invalid input yields the zero time and false; callers fall back to the raw string.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders t the way appointment requests expect it
func FormatDateTime(t time.Time) string {
	return t.Format(RequestDateTimeLayout)
}

// FormatDisplayDateTime renders t for tables and entries
func FormatDisplayDateTime(t time.Time) string {
	return t.Format(DisplayDateTimeLayout)
}

// NormalizeDisplay reformats a server date/time string for display.
// Unparseable values are returned unchanged.
func NormalizeDisplay(s string) string {
	t, ok := ParseDateTime(s)
	if !ok {
		return s
	}
	return FormatDisplayDateTime(t)
}

// SameMinute reports whether a and b fall in the same calendar minute
func SameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
