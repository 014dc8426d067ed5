package jsonschemer

// evaluateConst checks if the data matches exactly the value specified in the
// schema's 'const' keyword. According to the JSON Schema specification
// (drafts 06-07):
//   - The value of the "const" keyword may be of any type, including null.
//   - An instance validates successfully against this keyword if its value is
//     structurally equal to the value of the keyword.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.1.3
func (v *validator) evaluateConst(data any, schema map[string]any, pointer string, errs *[]*ValidationError) {
	if equalValues(data, schema["const"]) {
		return
	}

	*errs = append(*errs, newValidationError("const", "const_mismatch",
		"Value does not match the constant value", data, schema, pointer))
}
