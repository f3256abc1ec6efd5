package records

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerceString renders a value as a trimmed string. Non-string scalars are
// serialized rather than rejected; model output is too loose for strictness.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// coerceFloat converts a value to float64, accepting numeric strings.
// Returns 0 for anything unparseable.
func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceStringSlice converts a value to a slice of non-empty strings.
// Always returns a non-nil slice so records serialize with [] not null.
func coerceStringSlice(v any) []string {
	result := make([]string, 0)
	items, ok := v.([]any)
	if !ok {
		return result
	}
	for _, item := range items {
		s := coerceString(item)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// coerceMap returns the value as a generic mapping, or nil.
func coerceMap(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// coerceMapSlice converts a value to a slice of generic mappings,
// skipping items of any other shape.
func coerceMapSlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			result = append(result, m)
		}
	}
	return result
}
