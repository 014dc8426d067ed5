// Package jsonschemer implements the core validation engine of a JSON Schema
// validator for drafts 04, 06 and 07. Given a schema document and an instance
// document it produces the complete set of validation errors the instance
// violates against the schema.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschemer
