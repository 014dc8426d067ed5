package jsonschemer

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/goccy/go-json"
)

// dataType identifies the JSON schema type for a given Go value.
func dataType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		// Try as an integer first
		if _, ok := new(big.Int).SetString(string(v), 10); ok {
			return "integer"
		}
		// Fallback to big float to check if it is an integer
		if bigFloat, ok := new(big.Float).SetString(string(v)); ok {
			if _, acc := bigFloat.Int(nil); acc == big.Exact {
				return "integer"
			}
			return "number"
		}
		return "number"
	case float32:
		return floatType(float64(v))
	case float64:
		return floatType(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// floatType reports whether a float carries a fractional part: a float with a
// zero fractional part is an integer for type checks.
func floatType(f float64) string {
	bigFloat := new(big.Float).SetFloat64(f)
	if _, acc := bigFloat.Int(nil); acc == big.Exact {
		return "integer"
	}
	return "number"
}

// isNumeric reports whether the value is a JSON number of either flavor.
func isNumeric(v any) bool {
	t := dataType(v)
	return t == "number" || t == "integer"
}

// isIntegerValue reports whether the value satisfies the "integer" type:
// an integer, or a float with zero fractional part.
func isIntegerValue(v any) bool {
	return dataType(v) == "integer"
}

// matchesType reports whether the instance matches one schema type name.
// Integers are valid numbers per the specification.
func matchesType(v any, typeName string) bool {
	t := dataType(v)
	if typeName == "number" && t == "integer" {
		return true
	}
	return t == typeName
}

// sortedKeys returns the keys of an object in sorted order. Go maps carry no
// insertion order, so sorted iteration keeps error output reproducible.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// schemaInt reads an integer-valued schema keyword such as maxLength or
// minItems. The bool reports whether the value was a usable non-negative
// integer.
func schemaInt(v any) (int, bool) {
	if !isNumeric(v) {
		return 0, false
	}
	r := NewRat(v)
	if r == nil || !r.IsInt() || !r.Num().IsInt64() || r.Sign() < 0 {
		return 0, false
	}
	return int(r.Num().Int64()), true
}

// UnmarshalJSON decodes a JSON document into the engine's value model:
// objects as map[string]any, arrays as []any, numbers as json.Number so the
// integer/number distinction survives parsing.
func UnmarshalJSON(data []byte) (any, error) {
	var v any
	if err := unmarshalWithNumbers(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func unmarshalWithNumbers(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
