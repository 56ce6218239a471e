package animal

import (
	"fmt"
	"strings"
)

// Characteristic keys understood by the renderer and the filter.
const (
	KeyDiet               = "diet"
	KeyType               = "type"
	KeyGroup              = "group"
	KeyHabitat            = "habitat"
	KeyLifespan           = "lifespan"
	KeyTopSpeed           = "top_speed"
	KeyDistinctiveFeature = "distinctive_feature"
	KeyTemperament        = "temperament"
	KeySkinType           = "skin_type"
)

// Record describes a single animal. Absent fields stay nil.
type Record struct {
	Name            *string
	Taxonomy        *Taxonomy
	Characteristics Characteristics
	Locations       []string

	raw map[string]any
}

// Taxonomy holds the classification block of a record.
type Taxonomy struct {
	ScientificName *string
}

// Characteristics maps characteristic keys to scalar values. Values keep the
// type they were decoded with so numbers render in their natural form.
type Characteristics map[string]any

// Value reports the raw characteristic stored under key.
func (c Characteristics) Value(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, ok := c[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Text reports the characteristic under key when it is a string.
func (c Characteristics) Text(key string) (string, bool) {
	value, ok := c.Value(key)
	if !ok {
		return "", false
	}
	str, isString := value.(string)
	return str, isString
}

// FromMap builds a Record from a decoded mapping. Fields with an unexpected
// shape are treated as absent.
func FromMap(raw map[string]any) Record {
	record := Record{raw: raw}

	if name, ok := LookupString(raw, "name"); ok {
		record.Name = &name
	}

	if _, ok := Lookup(raw, "taxonomy"); ok {
		taxonomy := &Taxonomy{}
		if scientific, ok := LookupString(raw, "taxonomy", "scientific_name"); ok {
			taxonomy.ScientificName = &scientific
		}
		record.Taxonomy = taxonomy
	}

	if value, ok := Lookup(raw, "characteristics"); ok {
		if mapping, isMap := asMapping(value); isMap {
			record.Characteristics = Characteristics(mapping)
		}
	}

	if value, ok := Lookup(raw, "locations"); ok {
		record.Locations = toStrings(value)
	}

	return record
}

// Raw returns the mapping the record was decoded from, or nil for records
// constructed in code.
func (r Record) Raw() map[string]any {
	return r.raw
}

// DisplayName returns the record name or an empty string when absent.
func (r Record) DisplayName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// ScientificName returns the taxonomy scientific name when present.
func (r Record) ScientificName() (string, bool) {
	if r.Taxonomy == nil || r.Taxonomy.ScientificName == nil {
		return "", false
	}
	return *r.Taxonomy.ScientificName, true
}

// Attribute returns the trimmed string characteristic under key. Blank and
// non-string values report ok=false.
func (r Record) Attribute(key string) (string, bool) {
	value, ok := r.Characteristics.Text(key)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func toStrings(value any) []string {
	items, ok := value.([]any)
	if !ok {
		if strs, isStrings := value.([]string); isStrings {
			return append([]string(nil), strs...)
		}
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch typed := item.(type) {
		case nil:
			continue
		case string:
			out = append(out, typed)
		default:
			out = append(out, fmt.Sprint(typed))
		}
	}
	return out
}
