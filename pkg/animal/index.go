package animal

import "sort"

// AttributeValues returns the distinct, trimmed, non-blank values stored under
// the characteristic key, sorted ascending.
func AttributeValues(records []Record, key string) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		value, ok := record.Attribute(key)
		if !ok {
			continue
		}
		seen[value] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for value := range seen {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// SkinTypes is AttributeValues for the skin_type characteristic.
func SkinTypes(records []Record) []string {
	return AttributeValues(records, KeySkinType)
}

// FilterByAttribute keeps the records whose trimmed characteristic equals
// target exactly. Input order is preserved.
func FilterByAttribute(records []Record, key, target string) []Record {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		value, ok := record.Attribute(key)
		if !ok || value != target {
			continue
		}
		out = append(out, record)
	}
	return out
}

// FilterBySkinType is FilterByAttribute for the skin_type characteristic.
func FilterBySkinType(records []Record, target string) []Record {
	return FilterByAttribute(records, KeySkinType, target)
}
