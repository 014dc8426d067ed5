package jsonschemer

// evaluateContains checks if at least one element in the array meets the
// schema specified by the 'contains' keyword. According to the JSON Schema
// specification (drafts 06-07):
//   - The "contains" keyword's value must be a valid JSON Schema.
//   - An array is valid if at least one of its elements matches the schema;
//     an empty array therefore never matches.
//
// A failure yields one composite error whose subschema enumerators hold the
// per-element error sequences, in element order.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.4.6
func (v *validator) evaluateContains(data any, items []any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	contained := schema["contains"]

	matched := false
	enumerators := make([]ErrorEnumerator, 0, len(items))
	for index, item := range items {
		elementErrs, err := v.evaluate(item, contained, appendPointerIndex(pointer, index), baseURI)
		if err != nil {
			return err
		}
		if len(elementErrs) == 0 {
			matched = true
		}
		enumerators = append(enumerators, v.branchEnumerator(item, contained, appendPointerIndex(pointer, index), baseURI))
	}

	if !matched {
		*errs = append(*errs, newCompositeError("contains", "contains_mismatch",
			"Value should contain at least one item matching the contains schema", data, schema, pointer, enumerators))
	}
	return nil
}
