package jsonschemer

// evaluateConditional evaluates the data against conditional subschemas
// defined by 'if', 'then', and 'else'. According to the JSON Schema
// specification (draft 07):
//   - If data validates against the "if" subschema, the "then" subschema must
//     also validate the data when present.
//   - If data does not validate against the "if" subschema, the "else"
//     subschema must validate the data when present.
//   - Failures of "if" itself never surface as errors; only the chosen branch
//     contributes to the stream.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.6
func (v *validator) evaluateConditional(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	ifErrs, err := v.evaluate(data, schema["if"], pointer, baseURI)
	if err != nil {
		return err
	}

	if len(ifErrs) == 0 {
		if then, ok := schema["then"]; ok {
			thenErrs, err := v.evaluate(data, then, pointer, baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, thenErrs...)
		}
		return nil
	}

	if elseSchema, ok := schema["else"]; ok {
		elseErrs, err := v.evaluate(data, elseSchema, pointer, baseURI)
		if err != nil {
			return err
		}
		*errs = append(*errs, elseErrs...)
	}
	return nil
}
