package util

import (
	"strings"
	"time"
)

// isoLayout matches the millisecond UTC stamps written by the admin UI
// (e.g. 2024-05-01T08:30:00.000Z).
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock returns the current time. Callers that need deterministic output
// inject their own.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ParseISO accepts the UI layout as well as plain RFC 3339 stamps.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(isoLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}
