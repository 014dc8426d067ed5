package jsonschemer

import (
	"github.com/goccy/go-yaml"
)

// evaluateContent checks if the given string conforms to the encoding and
// media type specified in the schema. According to the JSON Schema
// specification (draft 07):
//   - The "contentEncoding" keyword defines how the string decodes to binary
//     data; decoding runs through the handle's decoder registry.
//   - The "contentMediaType" keyword describes the media type the decoded
//     data should conform to; parsing runs through the handle's media type
//     registry.
//
// A strict base64 decode failure surfaces as a contentEncoding validation
// error; an encoding or media type without a registered handler is an
// UnsupportedError; any other decoder failure propagates unchanged.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.8
func (v *validator) evaluateContent(value string, schema map[string]any, pointer string, errs *[]*ValidationError) error {
	content := []byte(value)

	if raw, ok := schema["contentEncoding"]; ok {
		encoding, ok := raw.(string)
		if !ok {
			return &SchemaError{Keyword: "contentEncoding", Detail: "value must be a string"}
		}
		decoder, ok := v.handle.decoders[encoding]
		if !ok {
			return &UnsupportedError{Keyword: "contentEncoding", Name: encoding}
		}
		decoded, err := decoder(value)
		if err != nil {
			if encoding != "base64" {
				return err
			}
			*errs = append(*errs, newValidationError("contentEncoding", "invalid_encoding",
				"Value is not valid {encoding} data", value, schema, pointer, map[string]any{
					"encoding": encoding,
				}))
			return nil
		}
		content = decoded
	}

	if raw, ok := schema["contentMediaType"]; ok {
		mediaType, ok := raw.(string)
		if !ok {
			return &SchemaError{Keyword: "contentMediaType", Detail: "value must be a string"}
		}
		unmarshal, ok := v.handle.mediaTypes[mediaType]
		if !ok {
			return &UnsupportedError{Keyword: "contentMediaType", Name: mediaType}
		}
		if _, err := unmarshal(content); err != nil {
			*errs = append(*errs, newValidationError("contentMediaType", "invalid_media_type",
				"Value does not parse as {media_type}", value, schema, pointer, map[string]any{
					"media_type": mediaType,
				}))
		}
	}

	return nil
}

func unmarshalYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, ErrYAMLUnmarshal
	}
	return v, nil
}
