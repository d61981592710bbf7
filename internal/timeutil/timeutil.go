// Package timeutil is the single place boundary timestamps are parsed and
// rendered, so create and update share identical date behavior.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted on input, tried in order. The first covers RFC 3339 with
// a trailing "Z" or a numeric UTC offset; the rest accept naive ISO-8601
// strings, which are interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse converts an ISO-8601 date-time string into a UTC time.Time,
// truncated to millisecond precision (the store's native resolution, so
// parsed values survive a round trip unchanged).
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

// Format renders a timestamp in the canonical boundary form: RFC 3339, UTC.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatPtr is Format for optional timestamps; nil stays nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}
