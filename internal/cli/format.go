package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"roster/internal/table"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for the list command.
type OutputFormat string

const (
	// OutputFormatTable formats records as the plain " | " separated table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON formats records as a JSON array of objects
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML formats records as a YAML sequence of mappings, keeping column order
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
// Returns nil if valid, or an error with a helpful message listing valid formats.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, yaml)", format)
	}
}

// WriteRecords writes records to w in the given format. An empty record list
// produces no table output and an empty array or sequence otherwise.
func WriteRecords(w io.Writer, records []table.Record, format OutputFormat) error {
	switch format {
	case OutputFormatTable:
		return table.Render(w, records)
	case OutputFormatJSON:
		return writeJSON(w, records)
	case OutputFormatYAML:
		return writeYAML(w, records)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeJSON relies on Record.MarshalJSON so keys keep query order.
func writeJSON(w io.Writer, records []table.Record) error {
	rows := records
	if rows == nil {
		rows = []table.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// writeYAML builds the document node by node so columns keep query order.
func writeYAML(w io.Writer, records []table.Record) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range records {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range r {
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}
			value := &yaml.Node{}
			if err := value.Encode(f.Value); err != nil {
				return fmt.Errorf("encode %s: %w", f.Name, err)
			}
			m.Content = append(m.Content, key, value)
		}
		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
