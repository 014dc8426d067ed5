package jsonschemer

// evaluateFormat checks if the data conforms to the format specified in the
// schema. Handle-level overrides are consulted first: a registered validator
// replaces the built-in one and a disabled entry turns the format into a
// no-op. Unknown formats pass, matching the annotation-by-default stance of
// the specification; the handle's format flag turns the whole phase off.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.7
func (v *validator) evaluateFormat(data any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	name, ok := schema["format"].(string)
	if !ok {
		return &SchemaError{Keyword: "format", Detail: "value must be a string"}
	}

	if override, ok := v.handle.formats[name]; ok {
		if override == nil {
			return nil // format disabled for this handle
		}
		if !override(data, schema) {
			*errs = append(*errs, formatError(name, data, schema, pointer))
		}
		return nil
	}

	if builtin, ok := Formats[name]; ok {
		if !builtin(data) {
			*errs = append(*errs, formatError(name, data, schema, pointer))
		}
	}

	return nil
}

func formatError(name string, data, schema any, pointer string) *ValidationError {
	return newValidationError("format", "format_mismatch",
		"Value does not match format '{format}'", data, schema, pointer, map[string]any{
			"format": name,
		})
}
