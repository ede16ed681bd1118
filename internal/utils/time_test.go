package util_test

import (
	"testing"
	"time"

	util "github.com/learnkick/learnkick-admin/internal/utils"
)

func TestFormatISO(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	ts := time.Date(2024, 5, 1, 10, 30, 0, 5_000_000, loc)

	got := util.FormatISO(ts)
	want := "2024-05-01T09:30:00.005Z"
	if got != want {
		t.Errorf("FormatISO = %q, want %q", got, want)
	}
}

func TestParseISO(t *testing.T) {
	t.Run("UILayout", func(t *testing.T) {
		ts, err := util.ParseISO("2024-05-01T09:30:00.005Z")
		if err != nil {
			t.Fatalf("ParseISO failed: %v", err)
		}
		if ts.Nanosecond() != 5_000_000 {
			t.Errorf("unexpected nanoseconds: %d", ts.Nanosecond())
		}
	})

	t.Run("RFC3339", func(t *testing.T) {
		if _, err := util.ParseISO(" 2024-05-01T09:30:00+02:00 "); err != nil {
			t.Fatalf("ParseISO failed: %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := util.ParseISO("yesterday"); err == nil {
			t.Fatal("ParseISO should fail on free text")
		}
	})
}

func TestUnixMillis(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	if got := util.UnixMillis(ts); got != 1700000000123 {
		t.Errorf("UnixMillis = %d", got)
	}
}
