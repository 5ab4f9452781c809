package codec

import (
	"strings"
	"time"
)

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)

// ParseTimestamp decodes an RFC3339-ish timestamp down to whole-second
// precision. A trailing "Z" and any sub-second fraction are stripped before
// parsing, and a bare date with no time component is also accepted.
// Unparsable input yields nil, never an error.
func ParseTimestamp(ts string) *time.Time {
	if ts == "" {
		return nil
	}
	ts = strings.TrimSuffix(ts, "Z")
	if i := strings.Index(ts, "."); i >= 0 {
		ts = ts[:i]
	}
	if t, err := time.Parse(timestampLayout, ts); err == nil {
		return &t
	}
	if t, err := time.Parse(dateLayout, ts); err == nil {
		return &t
	}
	return nil
}

// FormatTimestamp renders a timestamp in the same second-precision layout
// that ParseTimestamp accepts. A nil timestamp renders as the empty string.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
