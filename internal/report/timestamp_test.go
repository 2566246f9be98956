package report

import (
	"testing"
	"time"
)

func TestTimestampValid(t *testing.T) {
	// 1700000000000 ms = 2023-11-14T22:13:20Z; rendered in local time.
	want := time.Unix(1700000000, 0).Format("2006-01-02 15:04:05")

	got := Timestamp("1700000000000")
	if got != want {
		t.Errorf("Timestamp(%q) = %q, want %q", "1700000000000", got, want)
	}
	if len(got) != 19 {
		t.Errorf("formatted timestamp width = %d, want 19", len(got))
	}
}

func TestTimestampFallbackIsExactEcho(t *testing.T) {
	// Unparseable input returns the original text unchanged, never a
	// placeholder.
	tests := []string{
		"not-a-timestamp",
		"",
		"12.5",
		"1700000000000x",
		"2023-11-14",
	}

	for _, raw := range tests {
		if got := Timestamp(raw); got != raw {
			t.Errorf("Timestamp(%q) = %q, want exact echo", raw, got)
		}
	}
}

func TestTimestampOutOfRange(t *testing.T) {
	// Far outside the renderable calendar; degrades to echo.
	raw := "999999999999999999"
	if got := Timestamp(raw); got != raw {
		t.Errorf("Timestamp(%q) = %q, want exact echo", raw, got)
	}
}
