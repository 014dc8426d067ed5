package jsonschemer

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// ErrorEnumerator lazily re-runs validation of one composite branch and
// returns the branch errors. Enumerating it reproduces the exact errors that
// caused the composite to fail.
type ErrorEnumerator func() ([]*ValidationError, error)

// ValidationError describes one failed assertion. Data, Schema, Pointer, Type
// and Subschemas are the stable record fields; Code, Message and Params carry
// the human-readable side in the same shape the rest of the library's error
// records use.
type ValidationError struct {
	Data    any    `json:"data"`
	Schema  any    `json:"schema"`
	Pointer string `json:"pointer"`
	Type    string `json:"type"`

	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`

	// Subschemas is populated only for the composite keywords allOf, anyOf,
	// oneOf and contains: one enumerator per branch, in branch order.
	Subschemas []ErrorEnumerator `json:"-"`
}

// newValidationError creates a validation error record with the specified details.
func newValidationError(keyword, code, message string, data, schema any, pointer string, params ...map[string]any) *ValidationError {
	e := &ValidationError{
		Data:    data,
		Schema:  schema,
		Pointer: pointer,
		Type:    keyword,
		Code:    code,
		Message: message,
	}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

// newCompositeError creates a validation error for a composite keyword,
// carrying one lazy branch enumerator per subschema.
func newCompositeError(keyword, code, message string, data, schema any, pointer string, branches []ErrorEnumerator, params ...map[string]any) *ValidationError {
	e := newValidationError(keyword, code, message, data, schema, pointer, params...)
	if branches == nil {
		branches = []ErrorEnumerator{}
	}
	e.Subschemas = branches
	return e
}

func (e *ValidationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// Branches enumerates every subschema enumerator and returns the per-branch
// error sequences. It returns nil for non-composite errors.
func (e *ValidationError) Branches() ([][]*ValidationError, error) {
	if e.Subschemas == nil {
		return nil, nil
	}
	branches := make([][]*ValidationError, 0, len(e.Subschemas))
	for _, enum := range e.Subschemas {
		errs, err := enum()
		if err != nil {
			return nil, err
		}
		branches = append(branches, errs)
	}
	return branches, nil
}

// replace substitutes placeholders in a template string with actual parameter values.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}

	return template
}
