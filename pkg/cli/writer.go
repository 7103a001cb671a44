package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Writer interface {
	Write(records []Record) error
}

// NewWriter returns the Writer for format: json, csv or yaml.
func NewWriter(format string, out io.Writer) (Writer, error) {
	switch format {
	case "json":
		return JsonWriter{out: out}, nil
	case "csv":
		return CsvWriter{out: out, comma: ','}, nil
	case "yaml":
		return YamlWriter{out: out}, nil
	}
	return nil, errors.Errorf("unknown output format %q", format)
}

// JsonWriter writes the records as a single JSON array.
type JsonWriter struct {
	out io.Writer
}

func (w JsonWriter) Write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	return json.NewEncoder(w.out).Encode(records)
}

// CsvWriter writes a header with the union of all field names, sorted, then
// one row per record. Missing fields are left empty.
type CsvWriter struct {
	out   io.Writer
	comma rune
}

func (w CsvWriter) Write(records []Record) error {
	writer := csv.NewWriter(w.out)
	writer.Comma = w.comma

	fields := map[string]struct{}{}
	for _, record := range records {
		for field := range record {
			fields[field] = struct{}{}
		}
	}
	headers := slices.Sorted(maps.Keys(fields))
	if len(headers) == 0 {
		return nil
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, record := range records {
		row := make([]string, 0, len(headers))
		// keep the fields in the same order as the headers
		for _, header := range headers {
			row = append(row, record[header])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// YamlWriter writes the records as a YAML sequence.
type YamlWriter struct {
	out io.Writer
}

func (w YamlWriter) Write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	encoder := yaml.NewEncoder(w.out)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}
