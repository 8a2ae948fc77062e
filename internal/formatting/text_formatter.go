package formatting

import (
	"fmt"
	"strings"
)

// TextFormatter prints plain text, the way the report appears in logs.
type TextFormatter struct {
	options Options
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(options Options) Formatter {
	return &TextFormatter{
		options: options,
	}
}

// FormatResult prints a one-line verdict, or the cycle report on failure.
func (f *TextFormatter) FormatResult(result ResultView) error {
	var out []string
	switch {
	case result.Skipped:
		out = append(out, "Dependency validation skipped: the registry could not be inspected.")
	case result.Passed:
		out = append(out, fmt.Sprintf("No circular dependencies among %d services (%d edges).", result.Nodes, result.Edges))
	default:
		out = append(out, result.Report)
	}

	if len(result.Excluded) > 0 {
		out = append(out, "", fmt.Sprintf("Not validated (%d):", len(result.Excluded)))
		for _, e := range result.Excluded {
			out = append(out, fmt.Sprintf("  - %s: %s", e.Service, e.Reason))
		}
	}
	out = append(out, "", fmt.Sprintf("Run %s, %d registrations, %s", result.RunID, result.Registrations, result.Duration))

	_, err := fmt.Fprintln(f.options.writer(), strings.Join(out, "\n"))
	return err
}

// FormatGraph lists every service followed by its dependencies.
func (f *TextFormatter) FormatGraph(graph GraphView) error {
	if len(graph.Nodes) == 0 {
		_, err := fmt.Fprintln(f.options.writer(), "No services registered.")
		return err
	}

	var out []string
	out = append(out, fmt.Sprintf("Services (%d), edges (%d):", len(graph.Nodes), graph.Edges))
	for _, n := range graph.Nodes {
		out = append(out, fmt.Sprintf("  %s [%s]", n.Service, n.Kind))
		for _, dep := range n.DependsOn {
			out = append(out, fmt.Sprintf("    -> %s", dep))
		}
	}
	_, err := fmt.Fprintln(f.options.writer(), strings.Join(out, "\n"))
	return err
}

// FormatData prints strings as they are, lists one item per line and
// anything else as indented JSON.
func (f *TextFormatter) FormatData(data interface{}) error {
	w := f.options.writer()
	var err error
	switch d := data.(type) {
	case string:
		_, err = fmt.Fprintln(w, d)
	case []string:
		if len(d) == 0 {
			_, err = fmt.Fprintln(w, "No items found.")
			break
		}
		for i, item := range d {
			if _, err = fmt.Fprintf(w, "  %d. %s\n", i+1, item); err != nil {
				break
			}
		}
	default:
		_, err = fmt.Fprintln(w, PrettyJSON(d))
	}
	return err
}

// SetOptions updates the formatter options
func (f *TextFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TextFormatter) GetOptions() Options {
	return f.options
}
