package codec

import (
	"testing"
	"time"
)

func TestParseTimestamp_FullForm(t *testing.T) {
	got := ParseTimestamp("2025-08-01T10:20:30Z")
	if got == nil {
		t.Fatal("ParseTimestamp returned nil for valid timestamp")
	}
	want := time.Date(2025, 8, 1, 10, 20, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseTimestamp_StripsFraction(t *testing.T) {
	got := ParseTimestamp("2025-08-01T10:20:30.123456Z")
	if got == nil {
		t.Fatal("ParseTimestamp returned nil for fractional timestamp")
	}
	want := time.Date(2025, 8, 1, 10, 20, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseTimestamp_NoZoneMarker(t *testing.T) {
	got := ParseTimestamp("2025-08-01T10:20:30")
	if got == nil || got.Hour() != 10 {
		t.Errorf("got %v, want hour 10", got)
	}
}

func TestParseTimestamp_BareDate(t *testing.T) {
	got := ParseTimestamp("2019-03-17")
	if got == nil {
		t.Fatal("ParseTimestamp returned nil for bare date")
	}
	if got.Year() != 2019 || got.Month() != time.March || got.Day() != 17 {
		t.Errorf("got %v, want 2019-03-17", got)
	}
}

func TestParseTimestamp_UnparsableIsNil(t *testing.T) {
	for _, ts := range []string{"", "not-a-date", "17/03/2019", "2019-13-45T99:99:99Z"} {
		if got := ParseTimestamp(ts); got != nil {
			t.Errorf("ParseTimestamp(%q) = %v, want nil", ts, got)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 8, 1, 10, 20, 30, 0, time.UTC)
	if got := FormatTimestamp(&ts); got != "2025-08-01T10:20:30" {
		t.Errorf("FormatTimestamp = %q", got)
	}
	if got := FormatTimestamp(nil); got != "" {
		t.Errorf("FormatTimestamp(nil) = %q, want empty", got)
	}
}
