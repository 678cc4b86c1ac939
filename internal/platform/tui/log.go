package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger shared by the CLI and the SSH
// server.
func NewLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
