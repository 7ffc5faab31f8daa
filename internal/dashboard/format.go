package dashboard

import (
	"math"
	"strings"
	"time"
)

// Placeholder is shown wherever a value is unknown.
const Placeholder = "—"

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses an ISO-8601 instant. Timestamps without an offset
// are read in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders a timestamp as "09:30 AM" in loc. Empty input gives the
// placeholder; unparsable input is returned unchanged.
func FormatTime(value string, loc *time.Location) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	t, ok := ParseTimestamp(value, loc)
	if !ok {
		return value
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("03:04 PM")
}

// Duration returns the whole minutes from start to end, rounded. It is 0
// when either bound is missing or unparsable, or when end precedes start.
func Duration(start, end string, loc *time.Location) int {
	s, ok := ParseTimestamp(start, loc)
	if !ok {
		return 0
	}
	e, ok := ParseTimestamp(end, loc)
	if !ok {
		return 0
	}
	minutes := math.Round(e.Sub(s).Minutes())
	if minutes <= 0 {
		return 0
	}
	return int(minutes)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
