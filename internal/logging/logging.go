// Package logging builds the diagnostic logger shared by the CLI and storage.
// Output goes to stderr so it never mixes with rendered reports on stdout.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Components
const (
	ComponentCLI     = "cli"
	ComponentStorage = "storage"
)

// Common field names
const (
	FieldPath     = "path"
	FieldDate     = "date"
	FieldDates    = "dates"
	FieldRecords  = "records"
	FieldAmount   = "amount"
	FieldCategory = "category"
)

// Options mirrors the log section of the config file
type Options struct {
	Level  string
	Format string
}

// New creates a logger writing to w
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var formatter log.Formatter
	switch opts.Format {
	case "", "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	}), nil
}

// WithComponent returns a child logger tagged with component
func WithComponent(l *log.Logger, component string) *log.Logger {
	return l.WithPrefix(component)
}
