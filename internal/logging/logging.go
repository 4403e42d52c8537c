// Package logging builds the charmbracelet/log logger shared by numtasks components.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "numpy_tasks"

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn or error; empty means info
	Format string    // text, json or logfmt; empty means text
	File   string    // optional file that receives a copy of every line
	Output io.Writer // defaults to os.Stderr
}

// New returns a logger configured from opts and a function that closes the
// log file, if one was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	formatter, err := parseFormatter(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(out, f)
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          Prefix,
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

func parseFormatter(name string) (log.Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("log format %q: expected text, json or logfmt", name)
	}
}
