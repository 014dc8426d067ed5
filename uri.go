package jsonschemer

import "net/url"

// joinURI resolves a relative reference against a base URI per RFC 3986.
// With no base the relative reference is returned parsed; with no relative
// reference the base is returned unchanged; with neither it returns nil.
func joinURI(base, relative string) (*url.URL, error) {
	if relative == "" {
		if base == "" {
			return nil, nil
		}
		return url.Parse(base)
	}

	rel, err := url.Parse(relative)
	if err != nil {
		return nil, err
	}
	if base == "" {
		return rel, nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	return baseURL.ResolveReference(rel), nil
}

// joinURIString is joinURI for callers tracking the base as a string. It
// falls back to the previous base when either side fails to parse, matching
// the engine's best-effort handling of malformed $id values.
func joinURIString(base, relative string) string {
	u, err := joinURI(base, relative)
	if err != nil || u == nil {
		return base
	}
	return u.String()
}

// isJSONPointerFragment reports whether a URI fragment is a well-formed JSON
// pointer: empty (the whole document) or rooted at "/".
func isJSONPointerFragment(fragment string) bool {
	return fragment == "" || fragment[0] == '/'
}
