package jsonschemer

import "fmt"

// validator carries the per-call state of one validation walk: the handle,
// the ref recursion depth and the memoized resolver fetches. A validator is
// never shared between calls, so the engine stays pure over immutable inputs.
type validator struct {
	handle  *Schema
	depth   int
	fetched map[string]*Schema
}

func newValidator(s *Schema) *validator {
	return &validator{handle: s}
}

// evaluate validates an instance against one schema node and returns every
// error the instance violates. It never short-circuits: each independently
// failing keyword contributes its own error.
func (v *validator) evaluate(data, node any, pointer, baseURI string) ([]*ValidationError, error) {
	switch schema := node.(type) {
	case bool:
		if schema {
			return nil, nil
		}
		return []*ValidationError{newValidationError("schema", "false_schema_mismatch",
			"No values are allowed because the schema is set to 'false'", data, node, pointer)}, nil
	case map[string]any:
		return v.evaluateSchemaObject(data, schema, pointer, baseURI)
	default:
		return nil, &SchemaError{Keyword: "schema", Detail: fmt.Sprintf("schema must be a boolean or an object, got %T", node)}
	}
}

func (v *validator) evaluateSchemaObject(data any, schema map[string]any, pointer, baseURI string) ([]*ValidationError, error) {
	// The identifier keyword re-bases every reference below this node.
	if id, ok := schema[v.handle.draft.idKeyword].(string); ok && id != "" {
		baseURI = joinURIString(baseURI, id)
	}

	// $ref delegates entirely; sibling keywords are ignored in drafts 04-07.
	if ref, ok := schema["$ref"].(string); ok {
		return v.evaluateRef(data, pointer, baseURI, ref)
	}

	var errs []*ValidationError

	if _, ok := schema["format"]; ok && v.handle.assertFormat {
		if err := v.evaluateFormat(data, schema, pointer, &errs); err != nil {
			return nil, err
		}
	}

	if len(v.handle.keywords) > 0 {
		if err := v.evaluateUserKeywords(data, schema, pointer, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["enum"]; ok {
		if err := v.evaluateEnum(data, schema, pointer, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["const"]; ok {
		v.evaluateConst(data, schema, pointer, &errs)
	}

	if _, ok := schema["allOf"]; ok {
		if err := v.evaluateAllOf(data, schema, pointer, baseURI, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["anyOf"]; ok {
		if err := v.evaluateAnyOf(data, schema, pointer, baseURI, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["oneOf"]; ok {
		if err := v.evaluateOneOf(data, schema, pointer, baseURI, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["not"]; ok {
		if err := v.evaluateNot(data, schema, pointer, baseURI, &errs); err != nil {
			return nil, err
		}
	}

	if _, ok := schema["if"]; ok {
		if err := v.evaluateConditional(data, schema, pointer, baseURI, &errs); err != nil {
			return nil, err
		}
	}

	if err := v.evaluateTyped(data, schema, pointer, baseURI, &errs); err != nil {
		return nil, err
	}

	return errs, nil
}

// evaluateTyped runs the type-specific validation phase, selected from the
// type keyword or, when absent, from the runtime class of the instance.
func (v *validator) evaluateTyped(data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	typeValue, hasType := schema["type"]
	if !hasType {
		switch dataType(data) {
		case "integer", "number":
			return v.validateNumericKeywords(data, schema, pointer, errs)
		case "string":
			return v.validateStringKeywords(data, schema, pointer, errs)
		case "array":
			return v.validateArrayKeywords(data, schema, pointer, baseURI, errs)
		case "object":
			return v.validateObjectKeywords(data, schema, pointer, baseURI, errs)
		}
		// null and boolean instances carry no further constraints.
		return nil
	}

	switch t := typeValue.(type) {
	case string:
		return v.validateAsType(t, data, schema, pointer, baseURI, errs)
	case []any:
		for _, sub := range t {
			name, ok := sub.(string)
			if !ok {
				return &SchemaError{Keyword: "type", Detail: "type array entries must be strings"}
			}
			if matchesType(data, name) {
				return v.validateAsType(name, data, schema, pointer, baseURI, errs)
			}
		}
		*errs = append(*errs, newValidationError("type", "type_mismatch",
			"Value is {received} but should be one of the listed types", data, schema, pointer,
			map[string]any{"received": dataType(data)}))
		return nil
	default:
		return &SchemaError{Keyword: "type", Detail: "type must be a string or an array of strings"}
	}
}

func (v *validator) validateAsType(name string, data any, schema map[string]any, pointer, baseURI string, errs *[]*ValidationError) error {
	switch name {
	case "integer":
		if !isIntegerValue(data) {
			*errs = append(*errs, typeError("integer", data, schema, pointer))
			return nil
		}
		return v.validateNumericKeywords(data, schema, pointer, errs)
	case "number":
		if !isNumeric(data) {
			*errs = append(*errs, typeError("number", data, schema, pointer))
			return nil
		}
		return v.validateNumericKeywords(data, schema, pointer, errs)
	case "string":
		if _, ok := data.(string); !ok {
			*errs = append(*errs, typeError("string", data, schema, pointer))
			return nil
		}
		return v.validateStringKeywords(data, schema, pointer, errs)
	case "array":
		if _, ok := data.([]any); !ok {
			*errs = append(*errs, typeError("array", data, schema, pointer))
			return nil
		}
		return v.validateArrayKeywords(data, schema, pointer, baseURI, errs)
	case "object":
		if _, ok := data.(map[string]any); !ok {
			*errs = append(*errs, typeError("object", data, schema, pointer))
			return nil
		}
		return v.validateObjectKeywords(data, schema, pointer, baseURI, errs)
	case "null":
		if data != nil {
			*errs = append(*errs, typeError("null", data, schema, pointer))
		}
		return nil
	case "boolean":
		if _, ok := data.(bool); !ok {
			*errs = append(*errs, typeError("boolean", data, schema, pointer))
		}
		return nil
	default:
		return &SchemaError{Keyword: "type", Detail: fmt.Sprintf("unknown type %q", name)}
	}
}

func typeError(expected string, data, schema any, pointer string) *ValidationError {
	return newValidationError(expected, "type_mismatch", "Value is {received} but should be {expected}",
		data, schema, pointer, map[string]any{
			"expected": expected,
			"received": dataType(data),
		})
}

// branchEnumerator defers re-validation of one composite branch. Enumerating
// it re-runs validation with identical context, reproducing the branch errors.
func (v *validator) branchEnumerator(data, branch any, pointer, baseURI string) ErrorEnumerator {
	handle := v.handle
	return func() ([]*ValidationError, error) {
		return newValidator(handle).evaluate(data, branch, pointer, baseURI)
	}
}

// schemaList reads a keyword whose value must be an array of schemas.
func schemaList(keyword string, schema map[string]any) ([]any, error) {
	list, ok := schema[keyword].([]any)
	if !ok {
		return nil, &SchemaError{Keyword: keyword, Detail: "value must be an array of schemas"}
	}
	return list, nil
}
