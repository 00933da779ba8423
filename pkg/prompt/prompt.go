// Package prompt asks the user for entry text, tokens and selections.
package prompt

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/journal/pkg/entry"
)

// ErrCancelled is returned when the user interrupts a prompt.
var ErrCancelled = errors.New("prompt: cancelled")

// Prompter runs promptui prompts against In and Out, stdin and stdout when
// nil.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (p *Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return os.Stdin
	}
	return io.NopCloser(p.In)
}

func (p *Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return os.Stdout
	}
	return nopWriteCloser{p.Out}
}

var textTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Text asks for a non-empty line.
func (p *Prompter) Text(label string) (string, error) {
	pr := promptui.Prompt{
		Label:     label,
		Templates: textTemplates,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	result, err := pr.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return strings.TrimSpace(result), nil
}

// Secret asks for a masked value. An empty answer is allowed.
func (p *Prompter) Secret(label string) (string, error) {
	pr := promptui.Prompt{
		Label:     label,
		Templates: textTemplates,
		Mask:      '*',
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := pr.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return strings.TrimSpace(result), nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	pr := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := pr.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, cancelled(err)
	}
	if result == "" {
		return false, nil
	}
	return ParseBool(result)
}

type entryItem struct {
	Day     string
	Clock   string
	Content string
}

// SelectEntry lets the user pick one of entries and returns its index.
func (p *Prompter) SelectEntry(label string, entries []entry.Entry) (int, error) {
	items := make([]entryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{Day: e.DateKey(), Clock: entry.Clock(e), Content: e.Content})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Day | faint }} {{ .Clock | yellow }} {{ .Content | cyan }}",
		Inactive: "   {{ .Day | faint }} {{ .Clock | yellow }} {{ .Content }}",
		Selected: "➜  {{ .Day | faint }} {{ .Clock | yellow }} {{ .Content | red }}",
	}

	searcher := func(input string, index int) bool {
		content := strings.Replace(strings.ToLower(items[index].Content), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(content, input)
	}

	return p.run(promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	})
}

type dayItem struct {
	Key   string
	Title string
	Count int
}

// SelectDay lets the user pick one of the date keys and returns its index.
func (p *Prompter) SelectDay(label string, days []string, groups entry.Groups) (int, error) {
	items := make([]dayItem, 0, len(days))
	for _, d := range days {
		items = append(items, dayItem{Key: d, Title: entry.DayTitle(d), Count: len(groups[d])})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | cyan }} {{ .Count | faint }}",
		Inactive: "   {{ .Title }} {{ .Count | faint }}",
		Selected: "➜  {{ .Title | red }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Title + " " + items[index].Key)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	return p.run(promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	})
}

func (p *Prompter) run(s promptui.Select) (int, error) {
	s.Stdin = p.stdin()
	s.Stdout = p.stdout()
	i, _, err := s.Run()
	if err != nil {
		return -1, cancelled(err)
	}
	return i, nil
}

func cancelled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "NO", "No", "no":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
