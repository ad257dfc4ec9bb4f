package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/solver"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
	// FormatYAML is structured YAML output
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// Formatter prints solver reports and arbitrary values.
type Formatter interface {
	// PrintReports prints one entry per grid
	PrintReports(reports []solver.Report) error
	// PrintValue prints arbitrary structured data
	PrintValue(v any) error
}

// NewFormatter returns the Formatter for format writing to w.
func NewFormatter(format OutputFormat, w io.Writer) Formatter {
	if w == nil {
		w = os.Stdout
	}
	switch format {
	case FormatJSON:
		return &JSONFormatter{writer: w}
	case FormatYAML:
		return &YAMLFormatter{writer: w}
	}

	return &TextFormatter{writer: w}
}

// TextFormatter implements Formatter for human-readable text output
type TextFormatter struct {
	writer io.Writer
}

// PrintReports prints a table with one row per grid, followed by any
// reconstructed paths.
func (f *TextFormatter) PrintReports(reports []solver.Report) error {
	tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "GRID\tSIZE\tBASIC\tWINDOWED"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "----\t----\t-----\t--------"); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(tw, "%s\t%dx%d\t%s\t%s\n",
			r.Name, r.Rows, r.Cols, costText(r.Basic), costText(r.Windowed)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range reports {
		for _, o := range []solver.Outcome{r.Basic, r.Windowed} {
			if len(o.Path) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(f.writer, "\n%s %s:\n  %s\n", r.Name, o.Policy, pathText(o.Path)); err != nil {
				return err
			}
		}
	}

	return nil
}

// PrintValue prints v as YAML, which reads well in a terminal.
func (f *TextFormatter) PrintValue(v any) error {
	return (&YAMLFormatter{writer: f.writer}).PrintValue(v)
}

// JSONFormatter implements Formatter for JSON output
type JSONFormatter struct {
	writer io.Writer
}

// PrintReports prints the reports as an indented JSON array.
func (f *JSONFormatter) PrintReports(reports []solver.Report) error {
	return f.PrintValue(reports)
}

// PrintValue prints v as indented JSON.
func (f *JSONFormatter) PrintValue(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAMLFormatter implements Formatter for YAML output
type YAMLFormatter struct {
	writer io.Writer
}

// PrintReports prints the reports as a YAML sequence.
func (f *YAMLFormatter) PrintReports(reports []solver.Report) error {
	return f.PrintValue(reports)
}

// PrintValue prints v as YAML.
func (f *YAMLFormatter) PrintValue(v any) error {
	enc := yaml.NewEncoder(f.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func costText(o solver.Outcome) string {
	if !o.Reachable {
		return "unreachable"
	}
	return fmt.Sprintf("%d", o.Cost)
}

// pathText renders a path as "(r,c)H" steps joined by arrows.
func pathText(path []dijkstra.State) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.Pos.String() + s.Heading.String()
	}
	return strings.Join(parts, " → ")
}
