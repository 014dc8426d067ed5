package jsonschemer

// evaluateItems checks if the array elements conform to the subschema or
// subschemas specified by the 'items' attribute. According to the JSON Schema
// specification (drafts 04-07):
//   - If "items" is a schema, every element of the instance array must
//     conform to it.
//   - If "items" is an array of schemas, element i validates against items[i]
//     positionally; elements beyond the tuple validate against
//     "additionalItems" when present and are otherwise unconstrained.
//
// Element errors carry the element's own instance pointer.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.4.1
func (v *validator) evaluateItems(items []any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	switch itemSchema := schema["items"].(type) {
	case []any:
		additional, hasAdditional := schema["additionalItems"]
		for index, item := range items {
			var elementErrs []*ValidationError
			var err error
			switch {
			case index < len(itemSchema):
				elementErrs, err = v.evaluate(item, itemSchema[index], appendPointerIndex(pointer, index), baseURI)
			case hasAdditional:
				elementErrs, err = v.evaluate(item, additional, appendPointerIndex(pointer, index), baseURI)
			default:
				continue
			}
			if err != nil {
				return err
			}
			*errs = append(*errs, elementErrs...)
		}
	default:
		for index, item := range items {
			elementErrs, err := v.evaluate(item, itemSchema, appendPointerIndex(pointer, index), baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, elementErrs...)
		}
	}
	return nil
}
