package jsonschemer

import (
	"net/url"
	"strings"
)

// maxRefDepth caps reference recursion. A schema that keeps advancing through
// refs without terminating fails with a RefCycleError once the cap is hit.
const maxRefDepth = 64

// evaluateRef resolves a $ref in context and validates the instance against
// the target subschema. Pointer fragments are evaluated live against their
// document; identifier refs go through the identifier index; anything else is
// pulled through the handle's resolver.
func (v *validator) evaluateRef(data any, pointer, baseURI, ref string) ([]*ValidationError, error) {
	v.depth++
	defer func() { v.depth-- }()
	if v.depth > maxRefDepth {
		return nil, &RefCycleError{Ref: ref, Depth: maxRefDepth}
	}

	joined := joinURIString(baseURI, ref)
	refURL, err := url.Parse(joined)
	if err != nil {
		return nil, &SchemaError{Keyword: "$ref", Detail: "unparseable reference " + ref, Err: err}
	}

	fragment := refURL.Fragment
	hasFragment := strings.Contains(ref, "#")

	if hasFragment && isJSONPointerFragment(fragment) {
		if strings.HasPrefix(ref, "#") {
			// Same-document pointer: evaluate against the current root and
			// re-base through any identifiers the pointer crossed.
			target, err := evaluatePointer(v.handle.root, fragment)
			if err != nil {
				return nil, err
			}
			newBase := pointerURI(v.handle.root, fragment, v.handle.draft.idKeyword)
			if newBase == "" {
				newBase = baseURI
			}
			return v.evaluate(data, target, pointer, newBase)
		}

		// External document plus pointer fragment.
		fetchURL := *refURL
		fetchURL.Fragment = ""
		external, err := v.fetch(fetchURL.String())
		if err != nil {
			return nil, err
		}
		target, err := evaluatePointer(external.root, fragment)
		if err != nil {
			return nil, err
		}
		newBase := pointerURI(external.root, fragment, external.draft.idKeyword)
		if newBase == "" {
			newBase = fetchURL.String()
		}
		return v.inHandle(external, data, target, pointer, newBase)
	}

	// Identifier refs resolve through the index built from the root document.
	refURI := refURL.String()
	if target, ok := v.handle.idIndex()[refURI]; ok {
		return v.evaluate(data, target, pointer, refURI)
	}

	// Unknown identifier: fetch the external root and consult its index, with
	// the external root itself as the default target.
	fetchURL := *refURL
	fetchURL.Fragment = ""
	external, err := v.fetch(fetchURL.String())
	if err != nil {
		return nil, err
	}
	target, ok := external.idIndex()[refURI]
	if !ok {
		target = external.root
	}
	return v.inHandle(external, data, target, pointer, refURI)
}

// fetch pulls an external document through the handle's resolver, memoizing
// the wrapped handle for the lifetime of this validation call so repeated
// refs to the same document fetch once.
func (v *validator) fetch(uri string) (*Schema, error) {
	if cached, ok := v.fetched[uri]; ok {
		return cached, nil
	}

	root, err := v.handle.resolver(uri)
	if err != nil {
		return nil, err
	}

	external := v.handle.withRoot(root)
	if v.fetched == nil {
		v.fetched = map[string]*Schema{}
	}
	v.fetched[uri] = external
	return external, nil
}

// inHandle evaluates against a node of another document's handle, keeping the
// recursion depth and fetch memo of the current walk.
func (v *validator) inHandle(external *Schema, data, node any, pointer, baseURI string) ([]*ValidationError, error) {
	previous := v.handle
	v.handle = external
	defer func() { v.handle = previous }()
	return v.evaluate(data, node, pointer, baseURI)
}
