package formatting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatResult writes the result as YAML
func (f *YAMLFormatter) FormatResult(result ResultView) error {
	return f.FormatData(result)
}

// FormatGraph writes the graph as YAML
func (f *YAMLFormatter) FormatGraph(graph GraphView) error {
	return f.FormatData(graph)
}

// FormatData writes any value as YAML
func (f *YAMLFormatter) FormatData(data interface{}) error {
	enc := yaml.NewEncoder(f.options.writer())
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}
