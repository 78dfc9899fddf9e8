// Package timespan parses and formats the hand-written time notation used in
// job documents: colon-separated spans ([[H:]MM:]SS or a bare second count)
// and fixed-layout recording timestamps.
package timespan

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clipcut/internal/faults"
)

// TimestampLayout is the only accepted layout for recording timestamps.
const TimestampLayout = "2006-01-02T15:04:05"

// Parse converts a span of the form [[H:]MM:]SS, or a bare non-negative
// integer second count, into a duration. Components must be unsigned decimal
// integers; anything else is a validation error.
func Parse(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, faults.Wrap(faults.ErrValidation, "timespan", "", "empty time span", nil)
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, faults.Wrap(faults.ErrValidation, "timespan", trimmed, "too many components", nil)
	}

	var total uint64
	for _, part := range parts {
		value, err := parseComponent(part)
		if err != nil {
			return 0, faults.Wrap(faults.ErrValidation, "timespan", trimmed, "", err)
		}
		total = total*60 + value
	}
	return time.Duration(total) * time.Second, nil
}

func parseComponent(part string) (uint64, error) {
	if part == "" {
		return 0, fmt.Errorf("empty component")
	}
	// ParseUint tolerates a leading "+", the grammar does not.
	if part[0] == '+' || part[0] == '-' {
		return 0, fmt.Errorf("signed component %q", part)
	}
	value, err := strconv.ParseUint(part, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric component %q", part)
	}
	return value, nil
}

// PathString renders a duration as a filename-safe H-MM-SS token, zero-padded
// and prefixed with "-" when negative. The output never contains characters
// that are unsafe in filenames.
func PathString(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Second)
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second
	return fmt.Sprintf("%s%d-%02d-%02d", sign, hours, minutes, seconds)
}

// ParseTimestamp parses a recording timestamp in TimestampLayout,
// interpreted in local time.
func ParseTimestamp(text string) (time.Time, error) {
	ts, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(text), time.Local)
	if err != nil {
		return time.Time{}, faults.Wrap(faults.ErrValidation, "timestamp", text, "", err)
	}
	return ts, nil
}
