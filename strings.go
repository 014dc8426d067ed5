package jsonschemer

import "unicode/utf8"

// validateStringKeywords groups the validation of all string-specific
// keywords. Lengths are measured in code points; patterns match as
// unanchored substring matches under Go RE2 semantics.
func (v *validator) validateStringKeywords(data any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	value, ok := data.(string)
	if !ok {
		return nil
	}

	if raw, ok := schema["maxLength"]; ok {
		max, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "maxLength", Detail: "value must be a non-negative integer"}
		}
		if utf8.RuneCountInString(value) > max {
			*errs = append(*errs, newValidationError("maxLength", "string_too_long",
				"Value should be at most {max_length} characters", data, schema, pointer, map[string]any{
					"max_length": max,
					"length":     utf8.RuneCountInString(value),
				}))
		}
	}

	if raw, ok := schema["minLength"]; ok {
		min, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "minLength", Detail: "value must be a non-negative integer"}
		}
		if utf8.RuneCountInString(value) < min {
			*errs = append(*errs, newValidationError("minLength", "string_too_short",
				"Value should be at least {min_length} characters", data, schema, pointer, map[string]any{
					"min_length": min,
					"length":     utf8.RuneCountInString(value),
				}))
		}
	}

	if raw, ok := schema["pattern"]; ok {
		pattern, ok := raw.(string)
		if !ok {
			return &SchemaError{Keyword: "pattern", Detail: "value must be a string"}
		}
		re, err := v.handle.compiledPattern(pattern)
		if err != nil {
			return err
		}
		if !re.MatchString(value) {
			*errs = append(*errs, newValidationError("pattern", "pattern_mismatch",
				"Value does not match the required pattern {pattern}", data, schema, pointer, map[string]any{
					"pattern": pattern,
				}))
		}
	}

	if err := v.evaluateContent(value, schema, pointer, errs); err != nil {
		return err
	}

	return nil
}
