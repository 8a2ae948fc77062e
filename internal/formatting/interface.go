// Package formatting renders validation results and dependency graphs for
// the CLI in several output formats (text, JSON, YAML, table).
package formatting

import (
	"io"
	"os"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"  // Plain text, the report as logged
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
	FormatTable OutputFormat = "table" // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Output io.Writer // Defaults to os.Stdout
	Color  bool      // Enable colored output
}

func (o Options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// Formatter renders wirecheck data.
type Formatter interface {
	FormatResult(result ResultView) error
	FormatGraph(graph GraphView) error

	// FormatData renders anything else, e.g. the list of saved reports.
	FormatData(data interface{}) error

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatText:
		fallthrough
	default:
		return NewTextFormatter(options)
	}
}
