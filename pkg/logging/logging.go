// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the logger name shown on every line.
const Name = "journal"

// Level maps the debug toggle to a log level.
func Level(debug bool) hclog.Level {
	if debug {
		return hclog.Debug
	}
	return hclog.Warn
}

// New returns a logger writing to w, or stderr when w is nil.
func New(debug bool, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  Level(debug),
		Output: w,
	})
}
