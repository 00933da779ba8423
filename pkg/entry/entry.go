// Package entry defines journal entries and the pure grouping helpers used to
// present them by day.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single journal line. Timestamp doubles as its identity.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// New stamps content with the given time.
func New(content string, at time.Time) Entry {
	return Entry{
		Timestamp: FormatTime(at),
		Content:   content,
	}
}

// Time parses the entry timestamp. The zero time is returned when the
// timestamp is not ISO-8601.
func (e Entry) Time() time.Time {
	t, err := ParseTime(e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DateKey is the calendar-day portion of the timestamp, e.g. "2023-01-01".
func (e Entry) DateKey() string {
	return DateKey(e)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s  %s", Clock(e), e.Content)
}

// DateKey returns the UTC calendar day of the timestamp. Timestamps that do
// not parse fall back to the text before the 'T' separator. It is stable
// across locales and is the only value used for grouping.
func DateKey(e Entry) string {
	return dayOf(sortKey(e.Timestamp))
}

func dayOf(key string) string {
	if i := strings.IndexByte(key, 'T'); i >= 0 {
		return key[:i]
	}
	return key
}

// Clone returns a copy of entries that shares no backing array with the input.
func Clone(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
