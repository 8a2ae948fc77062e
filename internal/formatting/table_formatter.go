package formatting

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatResult renders a summary table and, when cycles exist, one row per
// cycle.
func (f *TableFormatter) FormatResult(result ResultView) error {
	status := f.colorize(text.FgGreen, "PASSED")
	switch {
	case result.Skipped:
		status = f.colorize(text.FgYellow, "SKIPPED")
	case !result.Passed:
		status = f.colorize(text.FgRed, "FAILED")
	}

	summary := f.createTable()
	summary.AppendHeader(table.Row{f.header("PROPERTY"), f.header("VALUE")})
	summary.AppendRows([]table.Row{
		{"Status", status},
		{"Run", result.RunID},
		{"Registrations", result.Registrations},
		{"Services", result.Nodes},
		{"Edges", result.Edges},
		{"Cycles", len(result.Cycles)},
		{"Duration", result.Duration},
	})
	summary.Render()

	if len(result.Cycles) > 0 {
		cycles := f.createTable()
		cycles.AppendHeader(table.Row{f.header("#"), f.header("LENGTH"), f.header("PATH")})
		for i, c := range result.Cycles {
			cycles.AppendRow(table.Row{i + 1, len(c) - 1, strings.Join(c, " -> ")})
		}
		cycles.Render()
	}

	if len(result.Excluded) > 0 {
		excluded := f.createTable()
		excluded.AppendHeader(table.Row{f.header("NOT VALIDATED"), f.header("KIND"), f.header("REASON")})
		for _, e := range result.Excluded {
			excluded.AppendRow(table.Row{e.Service, e.Kind, e.Reason})
		}
		excluded.Render()
	}
	return nil
}

// FormatGraph renders one row per service.
func (f *TableFormatter) FormatGraph(graph GraphView) error {
	if len(graph.Nodes) == 0 {
		return f.formatEmptyMessage("No services registered")
	}

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("SERVICE"), f.header("KIND"), f.header("DEPENDS ON"), f.header("NEEDED BY")})
	for _, n := range graph.Nodes {
		t.AppendRow(table.Row{n.Service, n.Kind, listOrDash(n.DependsOn), listOrDash(n.Dependents)})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d services", len(graph.Nodes)), "", fmt.Sprintf("%d edges", graph.Edges), ""})
	t.Render()
	return nil
}

// FormatData formats generic data using table logic
func (f *TableFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		t := f.createTable()
		t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})
		for key, value := range d {
			valueStr := fmt.Sprintf("%v", value)
			if len(valueStr) > 100 {
				valueStr = valueStr[:97] + "..."
			}
			t.AppendRow(table.Row{key, valueStr})
		}
		t.SortBy([]table.SortBy{{Number: 1, Mode: table.Asc}})
		t.Render()
	case []string:
		if len(d) == 0 {
			return f.formatEmptyMessage("No items found")
		}
		t := f.createTable()
		t.AppendHeader(table.Row{f.header("#"), f.header("NAME")})
		for i, item := range d {
			t.AppendRow(table.Row{i + 1, item})
		}
		t.Render()
	default:
		_, err := fmt.Fprintln(f.options.writer(), PrettyJSON(d))
		return err
	}
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	return f.colorize(text.FgHiCyan, s)
}

func (f *TableFormatter) colorize(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) error {
	_, err := fmt.Fprintln(f.options.writer(), f.colorize(text.FgYellow, message))
	return err
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, "\n")
}
