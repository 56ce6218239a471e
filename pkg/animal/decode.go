package animal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the textual encoding of a data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNotCollection is returned when the decoded document is not a sequence.
var ErrNotCollection = errors.New("animal: document is not a sequence of records")

// FormatFromPath infers the data format from a file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data in the supplied format into records.
func Decode(data []byte, format Format) ([]Record, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatJSON, "":
		return DecodeJSON(data)
	default:
		return nil, fmt.Errorf("animal: unsupported format %q", format)
	}
}

// DecodeJSON parses a JSON array of record objects. Numbers keep their
// literal text.
func DecodeJSON(data []byte) ([]Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("animal: decode json: %w", err)
	}
	return FromValue(doc)
}

// DecodeYAML parses a YAML sequence of record mappings.
func DecodeYAML(data []byte) ([]Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("animal: decode yaml: %w", err)
	}
	return FromValue(doc)
}

// FromValue converts an already decoded document into records. Entries that
// are not mappings are skipped.
func FromValue(doc any) ([]Record, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, ErrNotCollection
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		mapping, isMap := asMapping(item)
		if !isMap {
			continue
		}
		records = append(records, FromMap(mapping))
	}
	return records, nil
}
