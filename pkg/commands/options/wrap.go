package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 wraps help text for 80 column terminals.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap collapses runs of whitespace and word-wraps text at width.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return wordwrap.String(strings.Join(words, " "), width)
}
