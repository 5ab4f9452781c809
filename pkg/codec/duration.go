// Package codec decodes the duration and timestamp encodings used by the
// YouTube Data API into plain values, and encodes durations back into
// human-readable strings. Malformed input never yields an error, only a
// documented default.
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	strictDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	durationPartRe   = regexp.MustCompile(`(\d+\.?\d*)([HMS])`)
)

// DurationSeconds decodes an ISO-8601 style duration token ("PT1H2M3S")
// into total seconds. Absent input or a token without the "PT" prefix
// yields 0. Tokens that fail the strict compound form fall back to summing
// any (number, unit) pairs found in the text, so a partially well-formed
// token still produces a best-effort value. Fractional components are
// truncated after summation.
func DurationSeconds(token string) int64 {
	if token == "" || !strings.HasPrefix(token, "PT") {
		return 0
	}

	if m := strictDurationRe.FindStringSubmatch(token); m != nil {
		h := atoi(m[1])
		min := atoi(m[2])
		s := atoi(m[3])
		return h*3600 + min*60 + s
	}

	var total float64
	for _, m := range durationPartRe.FindAllStringSubmatch(token, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "H":
			total += v * 3600
		case "M":
			total += v * 60
		case "S":
			total += v
		}
	}
	return int64(total)
}

// ReadableDuration renders a second count as "45s", "3m 20s" or "1h 2m".
// Minutes and seconds are only shown under an hour, so the encoding is
// lossy. Negative input means the duration is unknown and renders as "N/A".
func ReadableDuration(seconds int64) string {
	if seconds < 0 {
		return "N/A"
	}
	s := seconds
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	m := s / 60
	s = s % 60
	if m < 60 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := m / 60
	m = m % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

func atoi(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
