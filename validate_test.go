package jsonschemer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse decodes a JSON document into the engine's value model.
func mustParse(t *testing.T, doc string) any {
	t.Helper()
	v, err := UnmarshalJSON([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestValidateBooleanSchemas(t *testing.T) {
	instances := []string{`null`, `true`, `0`, `1.5`, `"x"`, `[1,2]`, `{"a":1}`}

	for _, doc := range instances {
		instance := mustParse(t, doc)

		errs, err := Draft7(true).Validate(instance)
		require.NoError(t, err)
		assert.Empty(t, errs, "true schema accepts %s", doc)

		errs, err = Draft7(false).Validate(instance)
		require.NoError(t, err)
		require.Len(t, errs, 1, "false schema rejects %s", doc)
		assert.Equal(t, "schema", errs[0].Type)
		assert.Nil(t, errs[0].Subschemas)
	}
}

func TestValidateEmptySchema(t *testing.T) {
	schema := Draft7(mustParse(t, `{}`))

	for _, doc := range []string{`null`, `false`, `12`, `"s"`, `[]`, `{}`} {
		errs, err := schema.Validate(mustParse(t, doc))
		require.NoError(t, err)
		assert.Empty(t, errs, "empty schema accepts %s", doc)
	}
}

func TestValidMatchesValidate(t *testing.T) {
	schema := Draft7(mustParse(t, `{"type": "integer", "minimum": 3}`))

	tests := []struct {
		doc   string
		valid bool
	}{
		{`5`, true},
		{`3`, true},
		{`2`, false},
		{`"x"`, false},
	}

	for _, tt := range tests {
		valid, err := schema.IsValid(mustParse(t, tt.doc))
		require.NoError(t, err)
		errs, err := schema.Validate(mustParse(t, tt.doc))
		require.NoError(t, err)
		assert.Equal(t, tt.valid, valid, "IsValid(%s)", tt.doc)
		assert.Equal(t, tt.valid, len(errs) == 0, "Validate(%s) agrees with IsValid", tt.doc)
	}
}

// Nested composites: one allOf error whose flattened branches are exactly the
// two maximum failures.
func TestNestedComposites(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"allOf": [
			{"type": "integer", "maximum": 1},
			{"type": "integer", "maximum": 10}
		]
	}`))

	errs, err := schema.Validate(mustParse(t, `11`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "allOf", errs[0].Type)

	branches, err := errs[0].Branches()
	require.NoError(t, err)
	require.Len(t, branches, 2)

	var flattened []*ValidationError
	for _, branch := range branches {
		flattened = append(flattened, branch...)
	}
	require.Len(t, flattened, 2)
	for _, e := range flattened {
		assert.Equal(t, "maximum", e.Type)
	}
}

// Object with mixed applicators: exactly one error, at /three, because [1,2]
// is not a string.
func TestObjectWithMixedApplicators(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"properties": {
			"one": {"type": "string", "maxLength": 5, "minLength": 3, "pattern": "\\w+"},
			"two": {"type": "integer", "minimum": 10, "maximum": 100, "multipleOf": 5}
		},
		"required": ["one"],
		"additionalProperties": {"type": "string"},
		"propertyNames": {"pattern": "\\w+"},
		"dependencies": {"one": ["two"], "two": {"minProperties": 1}}
	}`))

	errs, err := schema.Validate(mustParse(t, `{
		"one": "value",
		"two": 100,
		"three": [1, 2],
		"123": "x"
	}`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "string", errs[0].Type)
	assert.Equal(t, "/three", errs[0].Pointer)
}

func TestOneOfExactlyOne(t *testing.T) {
	schema := Draft7(mustParse(t, `{"oneOf": [{"type": "integer"}, {"type": "number"}]}`))

	// 3 matches both branches, so oneOf fails.
	errs, err := schema.Validate(mustParse(t, `3`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "oneOf", errs[0].Type)
	require.NotNil(t, errs[0].Subschemas)

	branches, err := errs[0].Branches()
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Empty(t, branches[0])
	assert.Empty(t, branches[1])

	// 1.5 matches only the number branch.
	errs, err = schema.Validate(mustParse(t, `1.5`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestIfThenElse(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"if": {"type": "integer"},
		"then": {"minimum": 10},
		"else": {"type": "string"}
	}`))

	errs, err := schema.Validate(mustParse(t, `5`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "minimum", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `"x"`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = schema.Validate(mustParse(t, `true`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "string", errs[0].Type)
}

func TestIntegerTypeBoundaries(t *testing.T) {
	schema := Draft7(mustParse(t, `{"type": "integer"}`))

	errs, err := schema.Validate(mustParse(t, `1.0`))
	require.NoError(t, err)
	assert.Empty(t, errs, "1.0 satisfies type integer")

	errs, err = schema.Validate(mustParse(t, `1.5`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "integer", errs[0].Type)
}

func TestMultipleOfBoundaries(t *testing.T) {
	tests := []struct {
		schema string
		doc    string
		valid  bool
	}{
		{`{"multipleOf": 2}`, `10`, true},
		{`{"multipleOf": 2.5}`, `10`, true},
		{`{"multipleOf": 3}`, `10`, false},
	}

	for _, tt := range tests {
		schema := Draft7(mustParse(t, tt.schema))
		errs, err := schema.Validate(mustParse(t, tt.doc))
		require.NoError(t, err)
		if tt.valid {
			assert.Empty(t, errs, "%s against %s", tt.doc, tt.schema)
		} else {
			require.Len(t, errs, 1, "%s against %s", tt.doc, tt.schema)
			assert.Equal(t, "multipleOf", errs[0].Type)
		}
	}
}

func TestExclusiveMaximumBoundary(t *testing.T) {
	schema := Draft7(mustParse(t, `{"exclusiveMaximum": 5}`))

	errs, err := schema.Validate(mustParse(t, `5`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "exclusiveMaximum", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `4.999`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestUniqueItemsBoundaries(t *testing.T) {
	schema := Draft7(mustParse(t, `{"uniqueItems": true}`))

	// 1 and 1.0 are numerically equal.
	errs, err := schema.Validate(mustParse(t, `[1, 1.0]`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "uniqueItems", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `[{"a": 1}, {"a": 1}]`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "uniqueItems", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `[1, 2, "1"]`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

// not(not(S)) accepts everything S accepts.
func TestDoubleNegationRoundTrip(t *testing.T) {
	inner := `{"type": "object", "required": ["a"], "properties": {"a": {"type": "integer"}}}`
	direct := Draft7(mustParse(t, inner))
	doubled := Draft7(mustParse(t, `{"not": {"not": `+inner+`}}`))

	for _, doc := range []string{`{"a": 1}`, `{"a": "x"}`, `{}`, `3`} {
		directValid, err := direct.IsValid(mustParse(t, doc))
		require.NoError(t, err)
		if directValid {
			doubledValid, err := doubled.IsValid(mustParse(t, doc))
			require.NoError(t, err)
			assert.True(t, doubledValid, "not-not accepts %s", doc)
		}
	}
}

// Validity against allOf[A, B] implies validity against A and against B.
func TestAllOfSplitRoundTrip(t *testing.T) {
	a := `{"type": "integer", "minimum": 2}`
	b := `{"maximum": 10}`
	combined := Draft7(mustParse(t, `{"allOf": [`+a+`, `+b+`]}`))
	schemaA := Draft7(mustParse(t, a))
	schemaB := Draft7(mustParse(t, b))

	for _, doc := range []string{`2`, `5`, `10`} {
		instance := mustParse(t, doc)
		valid, err := combined.IsValid(instance)
		require.NoError(t, err)
		require.True(t, valid)

		validA, err := schemaA.IsValid(instance)
		require.NoError(t, err)
		validB, err := schemaB.IsValid(instance)
		require.NoError(t, err)
		assert.True(t, validA && validB, "allOf split holds for %s", doc)
	}
}

func TestCompositeErrorsCarrySubschemas(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		doc    string
		typ    string
	}{
		{"allOf", `{"allOf": [{"type": "string"}]}`, `1`, "allOf"},
		{"anyOf", `{"anyOf": [{"type": "string"}, {"type": "boolean"}]}`, `1`, "anyOf"},
		{"oneOf", `{"oneOf": [{"type": "string"}]}`, `1`, "oneOf"},
		{"contains", `{"contains": {"type": "string"}}`, `[1, 2]`, "contains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := Draft7(mustParse(t, tt.schema)).Validate(mustParse(t, tt.doc))
			require.NoError(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.typ, errs[0].Type)
			assert.NotNil(t, errs[0].Subschemas)
		})
	}
}

func TestNonCompositeErrorsCarryNoSubschemas(t *testing.T) {
	errs, err := Draft7(mustParse(t, `{"type": "string"}`)).Validate(mustParse(t, `1`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Nil(t, errs[0].Subschemas)
}

func TestValidationDoesNotMutateInputs(t *testing.T) {
	schemaDoc := mustParse(t, `{
		"type": "object",
		"properties": {"a": {"type": "array", "items": {"type": "integer"}}},
		"dependencies": {"a": ["b"]}
	}`)
	instance := mustParse(t, `{"a": [1, "x"], "c": null}`)

	schemaBefore, err := normalizeValue(schemaDoc)
	require.NoError(t, err)
	instanceBefore, err := normalizeValue(instance)
	require.NoError(t, err)

	_, err = Draft7(schemaDoc).Validate(instance)
	require.NoError(t, err)

	schemaAfter, err := normalizeValue(schemaDoc)
	require.NoError(t, err)
	instanceAfter, err := normalizeValue(instance)
	require.NoError(t, err)

	assert.Equal(t, schemaBefore, schemaAfter)
	assert.Equal(t, instanceBefore, instanceAfter)
}

func TestNonShortCircuitingErrors(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"type": "string",
		"enum": ["a", "b"],
		"const": "a"
	}`))

	errs, err := schema.Validate(mustParse(t, `1`))
	require.NoError(t, err)

	types := make([]string, 0, len(errs))
	for _, e := range errs {
		types = append(types, e.Type)
	}
	assert.ElementsMatch(t, []string{"enum", "const", "string"}, types)
}

func TestTupleItemsAndAdditionalItems(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"items": [{"type": "integer"}, {"type": "string"}],
		"additionalItems": {"type": "boolean"}
	}`))

	errs, err := schema.Validate(mustParse(t, `[1, "x", true, false]`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = schema.Validate(mustParse(t, `[1, 2, 3]`))
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "string", errs[0].Type)
	assert.Equal(t, "/1", errs[0].Pointer)
	assert.Equal(t, "boolean", errs[1].Type)
	assert.Equal(t, "/2", errs[1].Pointer)
}

func TestItemsSchemaForm(t *testing.T) {
	schema := Draft7(mustParse(t, `{"items": {"type": "integer"}}`))

	errs, err := schema.Validate(mustParse(t, `[1, "x", 3, "y"]`))
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "/1", errs[0].Pointer)
	assert.Equal(t, "/3", errs[1].Pointer)
}

func TestPropertyPointerEscaping(t *testing.T) {
	schema := Draft7(mustParse(t, `{"additionalProperties": {"type": "integer"}}`))

	errs, err := schema.Validate(mustParse(t, `{"a/b": "x", "c~d": "y"}`))
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "/a~1b", errs[0].Pointer)
	assert.Equal(t, "/c~0d", errs[1].Pointer)
}

func TestTypeUnion(t *testing.T) {
	schema := Draft7(mustParse(t, `{"type": ["integer", "string"], "minimum": 3, "maxLength": 2}`))

	errs, err := schema.Validate(mustParse(t, `5`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = schema.Validate(mustParse(t, `2`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "minimum", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `"abc"`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "maxLength", errs[0].Type)

	errs, err = schema.Validate(mustParse(t, `true`))
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Type)
}

func TestEnumAndConstNumericEquality(t *testing.T) {
	enumSchema := Draft7(mustParse(t, `{"enum": [1, "a"]}`))
	valid, err := enumSchema.IsValid(mustParse(t, `1.0`))
	require.NoError(t, err)
	assert.True(t, valid, "1.0 equals enum value 1")

	constSchema := Draft7(mustParse(t, `{"const": {"a": [1, 2]}}`))
	valid, err = constSchema.IsValid(mustParse(t, `{"a": [1.0, 2]}`))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = constSchema.IsValid(mustParse(t, `{"a": [2, 1]}`))
	require.NoError(t, err)
	assert.False(t, valid)
}
