package entry

import (
	"time"
)

const (
	// LayoutTimestamp matches the UTC millisecond form used for new entries.
	LayoutTimestamp = "2006-01-02T15:04:05.000Z07:00"
	layoutDateKey   = "2006-01-02"
	layoutDayTitle  = "Monday, January 2, 2006"
	layoutClock     = "15:04"
	layoutSortKey   = "2006-01-02T15:04:05.000000000Z"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders t in UTC with fixed millisecond width so that string
// order equals chronological order.
func FormatTime(t time.Time) string {
	return t.UTC().Format(LayoutTimestamp)
}

// sortKey normalises a timestamp to a fixed-width UTC form so that string
// order is chronological. Unparseable values are returned unchanged.
func sortKey(v string) string {
	t, err := ParseTime(v)
	if err != nil {
		return v
	}
	return t.UTC().Format(layoutSortKey)
}

// DayKey returns the date key for a point in time.
func DayKey(t time.Time) string {
	return t.UTC().Format(layoutDateKey)
}

// ParseDayKey parses a "2006-01-02" date key.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(layoutDateKey, key)
}

// DayTitle renders a date key for display. Unparseable keys are returned as-is.
func DayTitle(key string) string {
	t, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.Format(layoutDayTitle)
}

// Clock renders the local wall-clock time of an entry.
func Clock(e Entry) string {
	t := e.Time()
	if t.IsZero() {
		return "--:--"
	}
	return t.Local().Format(layoutClock)
}
