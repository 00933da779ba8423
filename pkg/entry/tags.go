package entry

import (
	"regexp"
	"sort"
	"strings"
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// TagCount is a hashtag and how many times it appears.
type TagCount struct {
	Tag   string
	Count int
}

// Tags counts #word tokens across entries. Tags are case-insensitive and
// returned most frequent first, ties broken by name.
func Tags(entries []Entry) []TagCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, m := range tagPattern.FindAllStringSubmatch(e.Content, -1) {
			counts[strings.ToLower(m[1])]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
