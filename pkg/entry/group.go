package entry

import (
	"sort"
)

// Order selects how days are listed.
type Order int

const (
	// Ascending lists the oldest day first.
	Ascending Order = iota
	// Descending lists the newest day first.
	Descending
)

// Groups maps a date key to the entries logged on that day.
type Groups map[string][]Entry

// GroupByDate buckets entries by DateKey. Each bucket is ordered oldest first
// so the most recent entry of a day is last, whatever the input order.
func GroupByDate(entries []Entry) Groups {
	groups := make(Groups)
	for _, e := range entries {
		key := DateKey(e)
		groups[key] = append(groups[key], e)
	}
	for key := range groups {
		SortAscending(groups[key])
	}
	return groups
}

// Days returns the group keys in the requested order. A positive limit keeps
// only the first limit days.
func (g Groups) Days(order Order, limit int) []string {
	days := make([]string, 0, len(g))
	for k := range g {
		days = append(days, k)
	}
	sort.Strings(days)
	if order == Descending {
		for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
			days[i], days[j] = days[j], days[i]
		}
	}
	if limit > 0 && limit < len(days) {
		days = days[:limit]
	}
	return days
}

// Flatten concatenates the groups in ascending day order.
func (g Groups) Flatten() []Entry {
	out := make([]Entry, 0)
	for _, day := range g.Days(Ascending, 0) {
		out = append(out, g[day]...)
	}
	return out
}

// Less orders entries by the UTC instant of their timestamp. Timestamps that
// do not parse are compared as written. Equal instants fall back to the raw
// strings.
func Less(a, b Entry) bool {
	ak, bk := sortKey(a.Timestamp), sortKey(b.Timestamp)
	if ak != bk {
		return ak < bk
	}
	return a.Timestamp < b.Timestamp
}

// SortAscending sorts entries oldest first, in place.
func SortAscending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}

// SortDescending sorts entries newest first, in place.
func SortDescending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[j], entries[i])
	})
}

// Latest returns the index of the entry with the greatest timestamp, or -1.
func Latest(entries []Entry) int {
	idx := -1
	for i, e := range entries {
		if idx < 0 || Less(entries[idx], e) {
			idx = i
		}
	}
	return idx
}
