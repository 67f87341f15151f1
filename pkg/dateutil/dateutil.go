package dateutil

import (
	"fmt"
	"strconv"
	"time"
)

// SecondsPerDay is the length of one simulated day in epoch seconds.
const SecondsPerDay int64 = 24 * 60 * 60

// FromEpoch converts epoch seconds to a UTC time.
func FromEpoch(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

// ToEpoch converts a time to epoch seconds.
func ToEpoch(t time.Time) int64 {
	return t.Unix()
}

// AddDays shifts an epoch timestamp by whole 24h days.
func AddDays(ts int64, days int) int64 {
	return ts + int64(days)*SecondsPerDay
}

// SameWeekday reports whether both timestamps fall on the same weekday (UTC).
func SameWeekday(a, b int64) bool {
	return FromEpoch(a).Weekday() == FromEpoch(b).Weekday()
}

// SameDayOfMonth reports whether both timestamps share the calendar day of month (UTC).
// A start on the 31st therefore only lines up with months that have a 31st.
func SameDayOfMonth(a, b int64) bool {
	return FromEpoch(a).Day() == FromEpoch(b).Day()
}

// SameDayOfYear reports whether both timestamps share the ordinal day of the year (UTC).
// Ordinals shift by one after February in leap years.
func SameDayOfYear(a, b int64) bool {
	return FromEpoch(a).YearDay() == FromEpoch(b).YearDay()
}

// IsOlderThan reports whether ts lies more than maxAge before now.
func IsOlderThan(ts int64, now time.Time, maxAge time.Duration) bool {
	return now.Sub(FromEpoch(ts)) > maxAge
}

// FormatDate renders an epoch timestamp as YYYY-MM-DD.
func FormatDate(ts int64) string {
	return FromEpoch(ts).Format("2006-01-02")
}

// ParseDate parses YYYY-MM-DD, or a raw epoch second count, into epoch seconds (UTC midnight).
func ParseDate(s string) (int64, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Unix(), nil
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD or epoch seconds", s)
	}
	return ts, nil
}
