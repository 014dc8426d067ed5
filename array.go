package jsonschemer

// validateArrayKeywords groups the validation of all array-specific keywords.
func (v *validator) validateArrayKeywords(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	items, ok := data.([]any)
	if !ok {
		return nil
	}

	if raw, ok := schema["maxItems"]; ok {
		max, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "maxItems", Detail: "value must be a non-negative integer"}
		}
		if len(items) > max {
			*errs = append(*errs, newValidationError("maxItems", "too_many_items",
				"Value should have at most {max_items} items", data, schema, pointer, map[string]any{
					"max_items": max,
					"count":     len(items),
				}))
		}
	}

	if raw, ok := schema["minItems"]; ok {
		min, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "minItems", Detail: "value must be a non-negative integer"}
		}
		if len(items) < min {
			*errs = append(*errs, newValidationError("minItems", "too_few_items",
				"Value should have at least {min_items} items", data, schema, pointer, map[string]any{
					"min_items": min,
					"count":     len(items),
				}))
		}
	}

	if unique, ok := schema["uniqueItems"].(bool); ok && unique {
		if err := evaluateUniqueItems(data, items, schema, pointer, errs); err != nil {
			return err
		}
	}

	if _, ok := schema["contains"]; ok {
		if err := v.evaluateContains(data, items, schema, pointer, baseURI, errs); err != nil {
			return err
		}
	}

	if _, ok := schema["items"]; ok {
		if err := v.evaluateItems(items, schema, pointer, baseURI, errs); err != nil {
			return err
		}
	}

	return nil
}

// evaluateUniqueItems checks if all elements in the array are unique when the
// "uniqueItems" keyword is set to true. Two elements are equal iff they are
// structurally equal, with numbers compared numerically, so 1 and 1.0
// duplicate each other.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.5
func evaluateUniqueItems(data any, items []any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	seen := make(map[string]int, len(items))
	for index, item := range items {
		key, err := normalizeValue(item)
		if err != nil {
			return &SchemaError{Keyword: "uniqueItems", Detail: "item is not comparable", Err: err}
		}
		if first, dup := seen[key]; dup {
			*errs = append(*errs, newValidationError("uniqueItems", "unique_items_mismatch",
				"Value has duplicate items at index {first} and {second}", data, schema, pointer, map[string]any{
					"first":  first,
					"second": index,
				}))
			return nil
		}
		seen[key] = index
	}
	return nil
}
