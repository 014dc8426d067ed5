package jsonschemer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURI(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		relative string
		want     string
	}{
		{"both empty", "", "", ""},
		{"base only", "http://a/", "", "http://a/"},
		{"relative only", "", "y", "y"},
		{"relative against base", "http://a/", "y", "http://a/y"},
		{"absolute relative wins", "http://a/", "http://b/z", "http://b/z"},
		{"fragment against base", "http://a/s", "#/definitions/x", "http://a/s#/definitions/x"},
		{"path replacement", "http://a/one/two", "three", "http://a/one/three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := joinURI(tt.base, tt.relative)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, u)
				return
			}
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestIsJSONPointerFragment(t *testing.T) {
	assert.True(t, isJSONPointerFragment(""))
	assert.True(t, isJSONPointerFragment("/definitions/x"))
	assert.False(t, isJSONPointerFragment("anchor"))
}

func TestIDIndexCollectsDefinitions(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"$id": "http://a/",
		"definitions": {
			"x": {"$id": "y", "type": "integer"},
			"nested": {"$id": "n/", "definitions": {"deep": {"$id": "d"}}},
			"anchor": {"$id": "#frag"}
		},
		"properties": {
			"skipped": {"$id": "http://applicator/", "type": "string"}
		}
	}`))

	ids := schema.idIndex()
	assert.Contains(t, ids, "http://a/")
	assert.Contains(t, ids, "http://a/y")
	assert.Contains(t, ids, "http://a/n/")
	assert.Contains(t, ids, "http://a/n/d")
	assert.Contains(t, ids, "http://a/#frag")

	// Applicator subschemas are resolved through live pointer evaluation, not
	// the index.
	assert.NotContains(t, ids, "http://applicator/")
}

func TestIDIndexBuiltOnce(t *testing.T) {
	schema := Draft7(mustParse(t, `{"$id": "http://a/"}`))

	first := schema.idIndex()
	second := schema.idIndex()
	require.NotNil(t, first)

	// Repeated access returns the same memoized map.
	first["probe"] = true
	assert.Contains(t, second, "probe")
	delete(first, "probe")
}
