package jsonschemer

import "math/big"

// validateNumericKeywords groups the validation of all numeric-specific
// keywords. Comparisons run on exact rationals, so multipleOf decides
// divisibility precisely for every number the JSON parser admits.
//
// Under draft-04 semantics exclusiveMaximum and exclusiveMinimum are boolean
// modifiers that turn the paired maximum/minimum bound strict; from draft-06
// onward they are standalone numeric bounds.
func (v *validator) validateNumericKeywords(data any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	value := NewRat(data)
	if value == nil {
		return nil
	}

	exclusiveMax, exclusiveMin, err := v.exclusiveFlags(schema)
	if err != nil {
		return err
	}

	if raw, ok := schema["maximum"]; ok {
		bound, err := keywordRat("maximum", raw)
		if err != nil {
			return err
		}
		if cmp := value.Cmp(bound.Rat); cmp > 0 || (exclusiveMax && cmp == 0) {
			*errs = append(*errs, newValidationError("maximum", "value_above_maximum",
				"{value} should be at most {maximum}", data, schema, pointer, map[string]any{
					"value":   FormatRat(value),
					"maximum": FormatRat(bound),
				}))
		}
	}

	if raw, ok := schema["minimum"]; ok {
		bound, err := keywordRat("minimum", raw)
		if err != nil {
			return err
		}
		if cmp := value.Cmp(bound.Rat); cmp < 0 || (exclusiveMin && cmp == 0) {
			*errs = append(*errs, newValidationError("minimum", "value_below_minimum",
				"{value} should be at least {minimum}", data, schema, pointer, map[string]any{
					"value":   FormatRat(value),
					"minimum": FormatRat(bound),
				}))
		}
	}

	if raw, ok := schema["exclusiveMaximum"]; ok && !v.handle.draft.booleanExclusives {
		bound, err := keywordRat("exclusiveMaximum", raw)
		if err != nil {
			return err
		}
		if value.Cmp(bound.Rat) >= 0 {
			*errs = append(*errs, newValidationError("exclusiveMaximum", "value_above_exclusive_maximum",
				"{value} should be less than {exclusive_maximum}", data, schema, pointer, map[string]any{
					"value":             FormatRat(value),
					"exclusive_maximum": FormatRat(bound),
				}))
		}
	}

	if raw, ok := schema["exclusiveMinimum"]; ok && !v.handle.draft.booleanExclusives {
		bound, err := keywordRat("exclusiveMinimum", raw)
		if err != nil {
			return err
		}
		if value.Cmp(bound.Rat) <= 0 {
			*errs = append(*errs, newValidationError("exclusiveMinimum", "value_below_exclusive_minimum",
				"{value} should be greater than {exclusive_minimum}", data, schema, pointer, map[string]any{
					"value":             FormatRat(value),
					"exclusive_minimum": FormatRat(bound),
				}))
		}
	}

	if raw, ok := schema["multipleOf"]; ok {
		divisor, err := keywordRat("multipleOf", raw)
		if err != nil {
			return err
		}
		if divisor.Sign() <= 0 {
			return &SchemaError{Keyword: "multipleOf", Detail: "value must be greater than 0"}
		}
		quotient := new(big.Rat).Quo(value.Rat, divisor.Rat)
		if !quotient.IsInt() {
			*errs = append(*errs, newValidationError("multipleOf", "not_multiple_of",
				"{value} should be a multiple of {multiple_of}", data, schema, pointer, map[string]any{
					"value":       FormatRat(value),
					"multiple_of": FormatRat(divisor),
				}))
		}
	}

	return nil
}

// exclusiveFlags reads the draft-04 boolean forms of the exclusive bounds.
func (v *validator) exclusiveFlags(schema map[string]any) (exclusiveMax, exclusiveMin bool, err error) {
	if !v.handle.draft.booleanExclusives {
		return false, false, nil
	}
	if raw, ok := schema["exclusiveMaximum"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return false, false, &SchemaError{Keyword: "exclusiveMaximum", Detail: "value must be a boolean under draft-04"}
		}
		exclusiveMax = b
	}
	if raw, ok := schema["exclusiveMinimum"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return false, false, &SchemaError{Keyword: "exclusiveMinimum", Detail: "value must be a boolean under draft-04"}
		}
		exclusiveMin = b
	}
	return exclusiveMax, exclusiveMin, nil
}

// keywordRat reads a numeric keyword bound as an exact rational.
func keywordRat(keyword string, raw any) (*Rat, error) {
	if !isNumeric(raw) {
		return nil, &SchemaError{Keyword: keyword, Detail: "value must be a number"}
	}
	r := NewRat(raw)
	if r == nil {
		return nil, &SchemaError{Keyword: keyword, Detail: "value must be a number"}
	}
	return r, nil
}
