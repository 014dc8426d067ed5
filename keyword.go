package jsonschemer

import "sort"

// evaluateUserKeywords invokes every user-defined keyword present in the
// schema node, in sorted keyword order. A callable returning a non-nil error
// slice contributes those errors verbatim; a callable reporting failure
// without errors contributes one synthesized error typed by the keyword.
func (v *validator) evaluateUserKeywords(data any, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	names := make([]string, 0, len(v.handle.keywords))
	for name := range v.handle.keywords {
		if _, present := schema[name]; present {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		keywordErrs, ok := v.handle.keywords[name](data, schema, pointer)
		if keywordErrs != nil {
			*errs = append(*errs, keywordErrs...)
			continue
		}
		if !ok {
			*errs = append(*errs, newValidationError(name, "keyword_mismatch",
				"Value does not satisfy the {keyword} keyword", data, schema, pointer, map[string]any{
					"keyword": name,
				}))
		}
	}
	return nil
}
