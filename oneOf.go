package jsonschemer

// evaluateOneOf checks if the data conforms to exactly one of the schemas
// specified in the oneOf attribute. According to the JSON Schema
// specification (drafts 04-07):
//   - The "oneOf" keyword's value must be a non-empty array, where each item
//     is a valid JSON Schema.
//   - An instance validates successfully against this keyword if it validates
//     successfully against exactly one schema in the array; matching none or
//     more than one is a failure.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.3
func (v *validator) evaluateOneOf(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	branches, err := schemaList("oneOf", schema)
	if err != nil {
		return err
	}

	validCount := 0
	enumerators := make([]ErrorEnumerator, 0, len(branches))
	for _, branch := range branches {
		branchErrs, err := v.evaluate(data, branch, pointer, baseURI)
		if err != nil {
			return err
		}
		if len(branchErrs) == 0 {
			validCount++
		}
		enumerators = append(enumerators, v.branchEnumerator(data, branch, pointer, baseURI))
	}

	if validCount != 1 {
		*errs = append(*errs, newCompositeError("oneOf", "one_of_mismatch",
			"Value should match exactly one oneOf schema but matches {count}", data, schema, pointer, enumerators,
			map[string]any{"count": validCount}))
	}
	return nil
}
