// Package report holds the outcome of a numtasks run and renders it as text,
// JSON or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/numtasks/internal/tasks"
)

// Format selects how a Report is rendered.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrInvalidFormat is returned for unknown output formats.
var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat validates an output format name. The empty string means Text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
}

// Result is the outcome of one exercise.
type Result struct {
	TaskID   int           `json:"task_id" yaml:"task_id"`
	Name     string        `json:"name" yaml:"name"`
	Category string        `json:"category" yaml:"category"`
	Steps    []tasks.Step  `json:"steps" yaml:"steps"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Files    []string      `json:"files,omitempty" yaml:"files,omitempty"`
	Duration time.Duration `json:"duration_ns,format:nano" yaml:"duration_ns"`
}

// OK reports whether the exercise finished without error.
func (r Result) OK() bool { return r.Error == "" }

// Report is the outcome of a run, with results in catalogue order.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration_ns,format:nano" yaml:"duration_ns"`
	Results   []Result      `json:"results" yaml:"results"`
}

// Failed returns the number of results carrying an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, format Format) error {
	switch format {
	case Text, "":
		return renderText(w, r)
	case JSON:
		b, err := json.Marshal(r, json.DefaultOptionsV2(), jsontext.WithIndent("  "))
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// renderText mirrors the log output: one "Label: value" line per step,
// grouped under a header per exercise.
func renderText(w io.Writer, r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run %s: %d tasks, %d failed, %s\n", r.RunID, len(r.Results), r.Failed(), r.Duration.Round(time.Microsecond))
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "\n[%d] %s (%s)\n", res.TaskID, res.Name, res.Category)
		for _, s := range res.Steps {
			fmt.Fprintf(&sb, "%s: %s\n", s.Label, s.Value)
		}
		for _, f := range res.Files {
			fmt.Fprintf(&sb, "saved %s\n", f)
		}
		if !res.OK() {
			fmt.Fprintf(&sb, "error: %s\n", res.Error)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
