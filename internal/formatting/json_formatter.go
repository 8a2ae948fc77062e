package formatting

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatResult writes the result as JSON
func (f *JSONFormatter) FormatResult(result ResultView) error {
	return f.FormatData(result)
}

// FormatGraph writes the graph as JSON
func (f *JSONFormatter) FormatGraph(graph GraphView) error {
	return f.FormatData(graph)
}

// FormatData writes any value as indented JSON
func (f *JSONFormatter) FormatData(data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(f.options.writer(), string(b))
	return err
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}
