package jsonschemer

// evaluateNot checks if the data fails to conform to the schema specified in
// the not attribute. According to the JSON Schema specification (drafts
// 04-07):
//   - The "not" keyword's value must be a valid JSON Schema.
//   - An instance is valid against this keyword if it fails to validate
//     successfully against that schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.4
func (v *validator) evaluateNot(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	subErrs, err := v.evaluate(data, schema["not"], pointer, baseURI)
	if err != nil {
		return err
	}

	if len(subErrs) == 0 {
		*errs = append(*errs, newValidationError("not", "not_schema_mismatch",
			"Value should not match the not schema", data, schema, pointer))
	}
	return nil
}
