package jsonschemer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
)

// equalValues reports structural equality between two JSON values. Numbers
// compare numerically across representations, so 1, 1.0 and json.Number("1")
// are all equal.
func equalValues(a, b any) bool {
	na, err := normalizeValue(a)
	if err != nil {
		return false
	}
	nb, err := normalizeValue(b)
	if err != nil {
		return false
	}
	return na == nb
}

// normalizeValue creates a normalized string representation of any value for
// structural comparison, ensuring that objects with the same key-value pairs
// but different property orders are considered equal and that numerically
// equal numbers normalize identically.
func normalizeValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil

	case string:
		return strconv.Quote(v), nil

	case bool:
		return strconv.FormatBool(v), nil

	case map[string]any:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range sortedKeys(v) {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			normalized, err := normalizeValue(v[k])
			if err != nil {
				return "", err
			}
			sb.WriteString(normalized)
		}
		sb.WriteByte('}')
		return sb.String(), nil

	case []any:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			normalized, err := normalizeValue(elem)
			if err != nil {
				return "", err
			}
			sb.WriteString(normalized)
		}
		sb.WriteByte(']')
		return sb.String(), nil
	}

	// Numbers of every representation normalize through the rational form.
	if r := NewRat(value); r != nil && isNumeric(value) {
		return FormatRat(r), nil
	}

	// For other types, use JSON marshaling as fallback.
	bytes, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("normalize %T: %w", value, err)
	}
	return string(bytes), nil
}
