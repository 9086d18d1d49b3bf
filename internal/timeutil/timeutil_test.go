package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-08-30")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2025-08-30" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestTodayUsesUTC(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2025, 8, 30, 23, 0, 0, 0, loc)
	if got := Today(value); got != "2025-08-31" {
		t.Fatalf("expected UTC date, got %s", got)
	}
}
