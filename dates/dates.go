// Package dates converts between time.Time and the Web API's date form.
// The API stores timestamps as UTC, second precision, ISO 8601 with a
// trailing Z: YYYY-MM-DDTHH:MM:SSZ.
package dates

import (
	"fmt"
	"time"
)

const layout = "2006-01-02T15:04:05Z"

// Format renders t in the API form, converting to UTC first.
func Format(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(layout)
}

// FormatIn reinterprets t's wall-clock reading in the named IANA zone
// before converting to UTC. Use it for timestamps captured without zone
// information, such as form input from a user in a known locale.
func FormatIn(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("load zone %q: %w", zone, err)
	}
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	return Format(local), nil
}

// Parse reads an API-form date string into a UTC time.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse api date %q: %w", value, err)
	}
	return t.UTC(), nil
}

// ParseIn reads an API-form date string and shifts the clock reading into
// the named IANA zone.
func ParseIn(value string, zone string) (time.Time, error) {
	t, err := Parse(value)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return t.In(loc), nil
}
