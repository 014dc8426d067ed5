package jsonschemer

// validateObjectKeywords groups the validation of all object-specific
// keywords: dependencies, size bounds, required, and the property loop that
// applies properties, patternProperties, additionalProperties and
// propertyNames. Property iteration runs in sorted key order so the error
// stream is reproducible.
func (v *validator) validateObjectKeywords(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	object, ok := data.(map[string]any)
	if !ok {
		return nil
	}

	if _, ok := schema["dependencies"]; ok {
		if err := v.evaluateDependencies(object, schema, pointer, baseURI, errs); err != nil {
			return err
		}
	}

	if raw, ok := schema["maxProperties"]; ok {
		max, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "maxProperties", Detail: "value must be a non-negative integer"}
		}
		if len(object) > max {
			*errs = append(*errs, newValidationError("maxProperties", "too_many_properties",
				"Value should have at most {max_properties} properties", data, schema, pointer, map[string]any{
					"max_properties": max,
					"count":          len(object),
				}))
		}
	}

	if raw, ok := schema["minProperties"]; ok {
		min, ok := schemaInt(raw)
		if !ok {
			return &SchemaError{Keyword: "minProperties", Detail: "value must be a non-negative integer"}
		}
		if len(object) < min {
			*errs = append(*errs, newValidationError("minProperties", "too_few_properties",
				"Value should have at least {min_properties} properties", data, schema, pointer, map[string]any{
					"min_properties": min,
					"count":          len(object),
				}))
		}
	}

	if _, ok := schema["required"]; ok {
		if err := evaluateRequired(object, schema, pointer, errs); err != nil {
			return err
		}
	}

	return v.evaluatePropertyApplicators(object, schema, pointer, baseURI, errs)
}

// evaluateRequired checks that every required property name is present.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.3
func evaluateRequired(object map[string]any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	names, ok := schema["required"].([]any)
	if !ok {
		return &SchemaError{Keyword: "required", Detail: "value must be an array of strings"}
	}

	var missing []string
	for _, raw := range names {
		name, ok := raw.(string)
		if !ok {
			return &SchemaError{Keyword: "required", Detail: "value must be an array of strings"}
		}
		if _, exists := object[name]; !exists {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		*errs = append(*errs, newValidationError("required", "missing_required_properties",
			"Required properties {properties} are missing", object, schema, pointer, map[string]any{
				"properties": missing,
			}))
	}
	return nil
}

// evaluateDependencies applies the draft-07 dependencies keyword: for every
// present property with a dependency, a schema-form value validates the whole
// object and an array-form value behaves as a required list.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.7
func (v *validator) evaluateDependencies(object map[string]any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	dependencies, ok := schema["dependencies"].(map[string]any)
	if !ok {
		return &SchemaError{Keyword: "dependencies", Detail: "value must be an object"}
	}

	for _, name := range sortedKeys(dependencies) {
		if _, present := object[name]; !present {
			continue
		}
		dependency := dependencies[name]
		if required, ok := dependency.([]any); ok {
			dependency = map[string]any{"required": required}
		}
		depErrs, err := v.evaluate(object, dependency, pointer, baseURI)
		if err != nil {
			return err
		}
		*errs = append(*errs, depErrs...)
	}
	return nil
}

// evaluatePropertyApplicators walks the instance properties once, applying
// propertyNames to each key, and to each value its properties schema plus
// every patternProperties schema whose pattern matches the key; values
// matched by neither fall through to additionalProperties.
func (v *validator) evaluatePropertyApplicators(object map[string]any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	propertyNames, hasPropertyNames := schema["propertyNames"]

	var properties map[string]any
	if raw, ok := schema["properties"]; ok {
		properties, ok = raw.(map[string]any)
		if !ok {
			return &SchemaError{Keyword: "properties", Detail: "value must be an object"}
		}
	}

	var patternProperties map[string]any
	var patterns []string
	if raw, ok := schema["patternProperties"]; ok {
		patternProperties, ok = raw.(map[string]any)
		if !ok {
			return &SchemaError{Keyword: "patternProperties", Detail: "value must be an object"}
		}
		patterns = sortedKeys(patternProperties)
	}

	additional, hasAdditional := schema["additionalProperties"]

	if !hasPropertyNames && properties == nil && patternProperties == nil && !hasAdditional {
		return nil
	}

	for _, key := range sortedKeys(object) {
		value := object[key]
		childPointer := appendPointer(pointer, key)

		if hasPropertyNames {
			nameErrs, err := v.evaluate(key, propertyNames, pointer, baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, nameErrs...)
		}

		matched := false

		if propSchema, ok := properties[key]; ok {
			matched = true
			propErrs, err := v.evaluate(value, propSchema, childPointer, baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, propErrs...)
		}

		for _, pattern := range patterns {
			re, err := v.handle.compiledPattern(pattern)
			if err != nil {
				return err
			}
			if !re.MatchString(key) {
				continue
			}
			matched = true
			patternErrs, err := v.evaluate(value, patternProperties[pattern], childPointer, baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, patternErrs...)
		}

		if !matched && hasAdditional {
			additionalErrs, err := v.evaluate(value, additional, childPointer, baseURI)
			if err != nil {
				return err
			}
			*errs = append(*errs, additionalErrs...)
		}
	}

	return nil
}
