package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Record is one input row, field name to value.
type Record map[string]string

// parseFile picks a parser from the file extension and calls onEachRecord
// for every record, stopping at the first error.
func parseFile(path string, onEachRecord func(Record) error) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		err = parseCsv(path, ',', onEachRecord)
	case ".tsv":
		err = parseCsv(path, '\t', onEachRecord)
	case ".json":
		err = parseJson(path, onEachRecord)
	case ".yaml", ".yml":
		err = parseYaml(path, onEachRecord)
	default:
		return errors.Errorf("%s: unsupported file extension %q", path, ext)
	}
	return errors.Wrapf(err, "parsing %s", path)
}

func parseJson(path string, onEachRecord func(Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(path string, comma rune, onEachRecord func(Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}

func parseYaml(path string, onEachRecord func(Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	records := []Record{}
	if err := yaml.NewDecoder(file).Decode(&records); err != nil && err != io.EOF {
		return err
	}
	for _, record := range records {
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// SplitKey turns a raw field into a key: split on delimiter, then normalized.
func SplitKey(raw string, delimiter string) []string {
	return NormalizeKey(strings.Split(raw, delimiter))
}

// NormalizeKey trims the elements, drops empty ones, sorts and dedupes, which
// is the form a SetTrie expects.
func NormalizeKey(elements []string) []string {
	key := make([]string, 0, len(elements))
	for _, element := range elements {
		if element = strings.TrimSpace(element); element != "" {
			key = append(key, element)
		}
	}
	slices.Sort(key)
	return slices.Compact(key)
}
