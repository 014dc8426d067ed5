package jsonschemer

import (
	"encoding/base64"
	"regexp"
	"sync"
)

// FormatFunc validates an instance against a named format. The schema node
// carrying the format keyword is passed for context.
type FormatFunc func(data any, schema map[string]any) bool

// KeywordFunc validates an instance for a user-defined keyword. The tagged
// return follows the engine's contract: a non-nil error slice is appended to
// the stream verbatim and ok is ignored; with a nil slice, ok reports
// pass/fail and a failure yields one synthesized error typed by the keyword.
type KeywordFunc func(data any, schema map[string]any, pointer string) (errs []*ValidationError, ok bool)

// RefResolver fetches an external schema document by URI.
type RefResolver func(uri string) (any, error)

// DecoderFunc decodes a contentEncoding-encoded string.
type DecoderFunc func(s string) ([]byte, error)

// MediaTypeFunc parses decoded content for a contentMediaType.
type MediaTypeFunc func(data []byte) (any, error)

// Schema is a handle bound to a root schema document. A handle is immutable
// after construction except for the lazily built identifier index and the
// memoized pattern cache, so any number of validations may run against it
// concurrently.
type Schema struct {
	root  any
	draft draft

	assertFormat bool
	formats      map[string]FormatFunc
	keywords     map[string]KeywordFunc
	resolver     RefResolver
	decoders     map[string]DecoderFunc
	mediaTypes   map[string]MediaTypeFunc

	idsOnce sync.Once
	ids     map[string]any

	patterns sync.Map // pattern string -> *regexp.Regexp
}

// Draft4 creates a handle interpreting the root document under draft-04
// semantics: the identifier keyword is "id" and the exclusive bounds are
// boolean modifiers of maximum/minimum.
func Draft4(root any) *Schema { return newHandle(root, draft04) }

// Draft6 creates a handle interpreting the root document under draft-06 semantics.
func Draft6(root any) *Schema { return newHandle(root, draft06) }

// Draft7 creates a handle interpreting the root document under draft-07 semantics.
func Draft7(root any) *Schema { return newHandle(root, draft07) }

func newHandle(root any, d draft) *Schema {
	s := &Schema{
		root:         root,
		draft:        d,
		assertFormat: true,
		resolver:     DefaultRefResolver,
		decoders:     map[string]DecoderFunc{},
		mediaTypes:   map[string]MediaTypeFunc{},
	}
	s.initDefaults()
	return s
}

// initDefaults initializes default values for decoders and media types.
func (s *Schema) initDefaults() {
	s.decoders["base64"] = base64.StdEncoding.Strict().DecodeString

	s.mediaTypes["application/json"] = func(data []byte) (any, error) {
		v, err := UnmarshalJSON(data)
		if err != nil {
			return nil, ErrJSONUnmarshal
		}
		return v, nil
	}
	s.mediaTypes["application/yaml"] = unmarshalYAML
}

// withRoot derives a handle for an external document, sharing every policy of
// the receiver but building its own identifier index.
func (s *Schema) withRoot(root any) *Schema {
	return &Schema{
		root:         root,
		draft:        s.draft,
		assertFormat: s.assertFormat,
		formats:      s.formats,
		keywords:     s.keywords,
		resolver:     s.resolver,
		decoders:     s.decoders,
		mediaTypes:   s.mediaTypes,
	}
}

// SetFormatAssertion enables or disables format validation for the handle.
func (s *Schema) SetFormatAssertion(assert bool) *Schema {
	s.assertFormat = assert
	return s
}

// RegisterFormat overrides or adds a named format validator.
func (s *Schema) RegisterFormat(name string, fn FormatFunc) *Schema {
	if s.formats == nil {
		s.formats = map[string]FormatFunc{}
	}
	s.formats[name] = fn
	return s
}

// DisableFormat turns a named format into a no-op for this handle.
func (s *Schema) DisableFormat(name string) *Schema {
	return s.RegisterFormat(name, nil)
}

// RegisterKeyword adds a user-defined keyword validator.
func (s *Schema) RegisterKeyword(name string, fn KeywordFunc) *Schema {
	if s.keywords == nil {
		s.keywords = map[string]KeywordFunc{}
	}
	s.keywords[name] = fn
	return s
}

// SetRefResolver installs the callback used to fetch external schema documents.
func (s *Schema) SetRefResolver(r RefResolver) *Schema {
	if r == nil {
		r = DefaultRefResolver
	}
	s.resolver = r
	return s
}

// RegisterDecoder adds a new decoder function for a specific contentEncoding.
func (s *Schema) RegisterDecoder(encodingName string, decoderFunc DecoderFunc) *Schema {
	s.decoders[encodingName] = decoderFunc
	return s
}

// RegisterMediaType adds a new parse function for a specific contentMediaType.
func (s *Schema) RegisterMediaType(mediaTypeName string, unmarshalFunc MediaTypeFunc) *Schema {
	s.mediaTypes[mediaTypeName] = unmarshalFunc
	return s
}

// Validate walks the schema and instance in lockstep and returns every
// validation error the instance violates. Exceptional failures, such as an
// unresolvable ref or a malformed schema construct, abort validation and are
// returned as the second value.
func (s *Schema) Validate(instance any) ([]*ValidationError, error) {
	v := newValidator(s)
	return v.evaluate(instance, s.root, "", "")
}

// IsValid reports whether the instance produces no validation errors.
func (s *Schema) IsValid(instance any) (bool, error) {
	errs, err := s.Validate(instance)
	if err != nil {
		return false, err
	}
	return len(errs) == 0, nil
}

// compiledPattern returns the memoized compiled form of a pattern, compiling
// it on first use. Compilation failures surface as a SchemaError at the
// moment the keyword is evaluated.
func (s *Schema) compiledPattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := s.patterns.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &SchemaError{Keyword: "pattern", Detail: "invalid regular expression " + pattern, Err: err}
	}
	s.patterns.Store(pattern, re)
	return re, nil
}
