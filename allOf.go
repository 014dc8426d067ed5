package jsonschemer

// evaluateAllOf checks if the data conforms to all schemas specified in the
// allOf attribute. According to the JSON Schema specification (drafts 04-07):
//   - The "allOf" keyword's value must be a non-empty array, where each item
//     is a valid JSON Schema.
//   - An instance validates successfully against this keyword if it validates
//     successfully against every schema in the array.
//
// A failure yields exactly one composite error regardless of how many
// branches failed; the branch errors stay reachable through the error's lazy
// subschema enumerators.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.1
func (v *validator) evaluateAllOf(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	branches, err := schemaList("allOf", schema)
	if err != nil {
		return err
	}

	failed := false
	enumerators := make([]ErrorEnumerator, 0, len(branches))
	for _, branch := range branches {
		branchErrs, err := v.evaluate(data, branch, pointer, baseURI)
		if err != nil {
			return err
		}
		if len(branchErrs) > 0 {
			failed = true
		}
		enumerators = append(enumerators, v.branchEnumerator(data, branch, pointer, baseURI))
	}

	if failed {
		*errs = append(*errs, newCompositeError("allOf", "all_of_mismatch",
			"Value does not match all the allOf schemas", data, schema, pointer, enumerators))
	}
	return nil
}
