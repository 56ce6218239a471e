package cards

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-animalgen/pkg/animal"
)

// field pairs a label with the characteristic it renders. Order is the order
// lines appear in a card.
type field struct {
	label string
	key   string
}

const locationsLabel = "Locations"

// cardFields lists the characteristic lines. Locations is rendered between
// Diet and Type.
var cardFields = []field{
	{label: "Diet", key: animal.KeyDiet},
	{label: locationsLabel},
	{label: "Type", key: animal.KeyType},
	{label: "Group", key: animal.KeyGroup},
	{label: "Habitat", key: animal.KeyHabitat},
	{label: "Lifespan", key: animal.KeyLifespan},
	{label: "Top speed", key: animal.KeyTopSpeed},
	{label: "Distinctive feature", key: animal.KeyDistinctiveFeature},
	{label: "Temperament", key: animal.KeyTemperament},
	{label: "Skin type", key: animal.KeySkinType},
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithSanitizer overrides the value sanitizer. Passing nil writes values
// verbatim.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(s *Serializer) {
		if sanitizer == nil {
			sanitizer = NoSanitize
		}
		s.sanitizer = sanitizer
	}
}

// Serializer renders records into card markup.
type Serializer struct {
	sanitizer Sanitizer
}

// New constructs a Serializer. Values are sanitized with TextSanitizer unless
// overridden.
func New(options ...Option) *Serializer {
	s := &Serializer{sanitizer: TextSanitizer()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Field renders one card list item. Absent values, nil values, and values
// that are blank after trimming or sanitizing produce an empty string.
func (s *Serializer) Field(label string, value any) string {
	text, ok := stringify(value)
	if !ok {
		return ""
	}
	cleaned, ok := s.clean(text)
	if !ok {
		return ""
	}
	return `      <li class="card__list-item"><strong>` + label + ":</strong> " + cleaned + "</li>\n"
}

// Record renders a single card.
func (s *Serializer) Record(record animal.Record) string {
	var b strings.Builder

	b.WriteString("<li class=\"cards__item\">\n")

	if name, ok := s.clean(record.DisplayName()); ok {
		b.WriteString(`  <div class="card__title">` + name + "</div>\n")
	}
	if scientific, ok := record.ScientificName(); ok {
		if cleaned, ok := s.clean(scientific); ok {
			b.WriteString(`  <div class="card__subtitle"><em>` + cleaned + "</em></div>\n")
		}
	}

	b.WriteString("  <div class=\"card__text\">\n")
	b.WriteString("    <ul class=\"card__list\">\n")
	for _, f := range cardFields {
		if f.label == locationsLabel {
			if len(record.Locations) > 0 {
				b.WriteString(s.Field(f.label, strings.Join(record.Locations, ", ")))
			}
			continue
		}
		value, _ := record.Characteristics.Value(f.key)
		b.WriteString(s.Field(f.label, value))
	}
	b.WriteString("    </ul>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</li>\n")

	return b.String()
}

// Collection sorts records by case-insensitive name, absent names first, and
// renders each card followed by a blank line. Equal names keep input order.
// The input slice is not modified.
func (s *Serializer) Collection(records []animal.Record) string {
	sorted := SortByName(records)

	var b strings.Builder
	for _, record := range sorted {
		b.WriteString(s.Record(record))
		b.WriteString("\n")
	}
	return b.String()
}

// SortByName returns a copy of records stably sorted by lower-cased name.
func SortByName(records []animal.Record) []animal.Record {
	sorted := make([]animal.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].DisplayName()) < strings.ToLower(sorted[j].DisplayName())
	})
	return sorted
}

var defaultSerializer = New()

// Field renders a card line with the default serializer.
func Field(label string, value any) string {
	return defaultSerializer.Field(label, value)
}

// Record renders a card with the default serializer.
func Record(record animal.Record) string {
	return defaultSerializer.Record(record)
}

// Collection renders records with the default serializer.
func Collection(records []animal.Record) string {
	return defaultSerializer.Collection(records)
}

// clean sanitizes value and reports false when nothing visible remains.
func (s *Serializer) clean(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	cleaned := s.sanitizer.Sanitize(value)
	if strings.TrimSpace(cleaned) == "" {
		return "", false
	}
	return cleaned, true
}

func stringify(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(typed) == "" {
			return "", false
		}
		return typed, true
	case *string:
		if typed == nil {
			return "", false
		}
		return stringify(*typed)
	case json.Number:
		return typed.String(), true
	case fmt.Stringer:
		return typed.String(), true
	default:
		return fmt.Sprint(typed), true
	}
}
