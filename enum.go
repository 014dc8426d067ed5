package jsonschemer

// evaluateEnum checks if the data's value matches one of the enumerated
// values specified in the schema. According to the JSON Schema specification
// (drafts 04-07):
//   - The value of the "enum" keyword must be an array with at least one
//     element, all elements unique.
//   - An instance validates successfully against this keyword if its value is
//     structurally equal to one of the elements in the array.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.1.2
func (v *validator) evaluateEnum(data any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	values, ok := schema["enum"].([]any)
	if !ok {
		return &SchemaError{Keyword: "enum", Detail: "value must be an array"}
	}

	for _, enumValue := range values {
		if equalValues(data, enumValue) {
			return nil
		}
	}

	*errs = append(*errs, newValidationError("enum", "value_not_in_enum",
		"Value should match one of the values specified by the enum", data, schema, pointer))
	return nil
}
