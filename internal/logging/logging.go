// Package logging configures the stderr diagnostics logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr. Warn level by default so normal
// runs stay silent; debug enables load/save traces.
func New(debug bool) *log.Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter is like New but writes to w. Used by tests to capture
// diagnostics.
func NewWithWriter(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "ltask",
	})
}
