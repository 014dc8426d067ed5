package jsonschemer

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentEncodingBase64(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentEncoding": "base64"}`))

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	errs, err := schema.Validate(encoded)
	require.NoError(t, err)
	assert.Empty(t, errs)

	// Strict decoding rejects invalid characters; the failure surfaces as a
	// validation error rather than an exceptional one.
	errs, err = schema.Validate("not base64!!!")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "contentEncoding", errs[0].Type)
}

func TestContentEncodingUnsupported(t *testing.T) {
	for _, encoding := range []string{"7bit", "8bit", "binary", "quoted-printable"} {
		schema := Draft7(mustParse(t, `{"contentEncoding": "`+encoding+`"}`))
		_, err := schema.Validate("payload")
		require.Error(t, err, "encoding %q", encoding)
		assert.ErrorIs(t, err, ErrNotImplemented)
	}
}

func TestContentMediaTypeJSON(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentMediaType": "application/json"}`))

	errs, err := schema.Validate(`{"a": 1}`)
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = schema.Validate(`{broken`)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "contentMediaType", errs[0].Type)
}

func TestContentMediaTypeUnsupported(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentMediaType": "image/png"}`))
	_, err := schema.Validate("data")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestContentEncodedJSON(t *testing.T) {
	schema := Draft7(mustParse(t, `{
		"contentEncoding": "base64",
		"contentMediaType": "application/json"
	}`))

	encoded := base64.StdEncoding.EncodeToString([]byte(`[1, 2, 3]`))
	errs, err := schema.Validate(encoded)
	require.NoError(t, err)
	assert.Empty(t, errs)

	encoded = base64.StdEncoding.EncodeToString([]byte(`not json`))
	errs, err = schema.Validate(encoded)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "contentMediaType", errs[0].Type)
}

func TestContentMediaTypeYAML(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentMediaType": "application/yaml"}`))

	errs, err := schema.Validate("a: 1\nb: [2, 3]\n")
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestContentSkipsNonStrings(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentEncoding": "base64"}`))
	errs, err := schema.Validate(mustParse(t, `42`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestRegisterDecoderAndMediaType(t *testing.T) {
	schema := Draft7(mustParse(t, `{"contentEncoding": "identity", "contentMediaType": "text/plain"}`))
	schema.RegisterDecoder("identity", func(s string) ([]byte, error) { return []byte(s), nil })
	schema.RegisterMediaType("text/plain", func(data []byte) (any, error) { return string(data), nil })

	errs, err := schema.Validate("anything")
	require.NoError(t, err)
	assert.Empty(t, errs)
}
