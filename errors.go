package jsonschemer

import (
	"errors"
	"fmt"
)

// === Reference Resolution Related Errors ===
var (
	// ErrUnknownRef is returned when a reference requires an external document
	// but no resolver has been configured on the handle.
	ErrUnknownRef = errors.New("unknown ref: no resolver configured")

	// ErrRefResolution is returned when a JSON pointer inside a reference does
	// not resolve against its target document.
	ErrRefResolution = errors.New("reference resolution failed")

	// ErrRefCycle is returned when reference resolution exceeds the recursion
	// depth cap.
	ErrRefCycle = errors.New("reference recursion depth exceeded")
)

// === Schema and Capability Related Errors ===
var (
	// ErrInvalidSchema is returned when a schema construct is malformed, for
	// example an uncompilable pattern or a non-numeric bound.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNotImplemented is returned when a schema names a contentEncoding or
	// contentMediaType the handle has no handler for.
	ErrNotImplemented = errors.New("not implemented")

	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")

	// ErrUnsupportedRatType is returned when a value cannot be converted to a
	// rational number.
	ErrUnsupportedRatType = errors.New("unsupported rat type")

	// ErrIPv6AddressFormat is returned when an IPv6 address host is not
	// enclosed in brackets.
	ErrIPv6AddressFormat = errors.New("ipv6 address format error")

	// ErrInvalidIPv6 is returned when an IPv6 address is invalid.
	ErrInvalidIPv6 = errors.New("invalid ipv6 address")
)

// UnknownRefError reports the URI the default resolver refused to fetch.
type UnknownRefError struct {
	URI string
}

func (e *UnknownRefError) Error() string {
	return fmt.Sprintf("unknown ref %q: no resolver configured", e.URI)
}

func (e *UnknownRefError) Unwrap() error { return ErrUnknownRef }

// RefError reports a JSON pointer token that failed to resolve.
type RefError struct {
	Pointer string
	Token   string
}

func (e *RefError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("pointer %q: token %q not found", e.Pointer, e.Token)
	}
	return fmt.Sprintf("pointer %q did not resolve", e.Pointer)
}

func (e *RefError) Unwrap() error { return ErrRefResolution }

// RefCycleError reports the reference that pushed resolution past the depth cap.
type RefCycleError struct {
	Ref   string
	Depth int
}

func (e *RefCycleError) Error() string {
	return fmt.Sprintf("ref %q exceeded recursion depth %d", e.Ref, e.Depth)
}

func (e *RefCycleError) Unwrap() error { return ErrRefCycle }

// SchemaError reports a malformed schema construct at the keyword that
// surfaced it. Err carries the underlying cause when one exists, such as a
// regexp compilation error.
type SchemaError struct {
	Keyword string
	Detail  string
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema keyword %q: %s: %v", e.Keyword, e.Detail, e.Err)
	}
	return fmt.Sprintf("schema keyword %q: %s", e.Keyword, e.Detail)
}

func (e *SchemaError) Unwrap() error { return ErrInvalidSchema }

// UnsupportedError reports a contentEncoding or contentMediaType name without
// a registered handler.
type UnsupportedError struct {
	Keyword string
	Name    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s %q is not implemented", e.Keyword, e.Name)
}

func (e *UnsupportedError) Unwrap() error { return ErrNotImplemented }
