package animal

// Lookup walks obj one key at a time and returns the value found at the end of
// the path. It never fails: when an intermediate value is not a mapping or a
// key is missing, ok is false.
func Lookup(obj any, keys ...string) (value any, ok bool) {
	current := obj
	for _, key := range keys {
		mapping, isMap := asMapping(current)
		if !isMap {
			return nil, false
		}
		next, exists := mapping[key]
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

// LookupString is Lookup restricted to string leaves.
func LookupString(obj any, keys ...string) (string, bool) {
	value, ok := Lookup(obj, keys...)
	if !ok {
		return "", false
	}
	str, isString := value.(string)
	return str, isString
}

func asMapping(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case Characteristics:
		return map[string]any(typed), true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}
