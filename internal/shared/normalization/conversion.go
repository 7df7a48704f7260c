package normalization

import "strings"

// AsString trims and returns the string representation of value when possible.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces the numeric shapes produced by JSON decoding into Go ints.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	default:
		return 0
	}
}

// AsInterfaceSlice returns the underlying slice when value decodes as one.
func AsInterfaceSlice(value any) []any {
	if items, ok := value.([]any); ok {
		return items
	}
	return nil
}

// AsStringSlice projects a decoded JSON array into its string members,
// preserving order and duplicates; non-string members are skipped.
func AsStringSlice(value any) []string {
	items := AsInterfaceSlice(value)
	if items == nil {
		if typed, ok := value.([]string); ok {
			return append([]string(nil), typed...)
		}
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, strings.TrimSpace(s))
		}
	}
	return result
}

// MapFromPayload unwraps the loosely typed object carried by a payload.
func MapFromPayload(payload any) map[string]any {
	if m, ok := payload.(map[string]any); ok {
		return m
	}
	return nil
}
