package report

import (
	"strconv"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// parseMillis interprets raw as integer milliseconds since the Unix
// epoch. ok is false when raw is not an integer or the resulting instant
// falls outside the renderable calendar range.
func parseMillis(raw string) (time.Time, bool) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	t := time.UnixMilli(ms)
	if t.Year() < 1 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

// Timestamp renders a millisecond epoch timestamp as a local calendar
// string. Unparseable input is returned exactly as given; a bad timestamp
// degrades one display line, never the record.
func Timestamp(raw string) string {
	t, ok := parseMillis(raw)
	if !ok {
		return raw
	}
	return t.Format(timestampLayout)
}
