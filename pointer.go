package jsonschemer

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// evaluatePointer resolves an RFC 6901 JSON pointer against a document.
// Numeric tokens index into arrays, every token keys into objects with a full
// literal match. A token that does not resolve fails with a RefError.
func evaluatePointer(root any, pointer string) (any, error) {
	if pointer == "" {
		return root, nil
	}

	current := root
	for _, token := range jsonpointer.Parse(pointer) {
		next, ok := descend(current, token)
		if !ok {
			return nil, &RefError{Pointer: pointer, Token: token}
		}
		current = next
	}

	return current, nil
}

// descend moves one pointer token down from a node.
func descend(node any, token string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[token]
		return child, ok
	case []any:
		index, err := strconv.Atoi(token)
		if err != nil || index < 0 || index >= len(n) {
			return nil, false
		}
		return n[index], true
	default:
		return nil, false
	}
}

// pointerURI walks a pointer token by token, joining every identifier
// encountered along the path in order. It returns the resulting URI, or the
// empty string if the walk traversed no identifier. A ref whose pointer
// crosses identifier-scoped subschemas re-bases subsequent ref resolution
// through this URI.
func pointerURI(root any, pointer, idKeyword string) string {
	uri := ""
	current := root
	uri = joinNodeID(uri, current, idKeyword)

	if pointer == "" {
		return uri
	}

	for _, token := range jsonpointer.Parse(pointer) {
		next, ok := descend(current, token)
		if !ok {
			break
		}
		current = next
		uri = joinNodeID(uri, current, idKeyword)
	}

	return uri
}

func joinNodeID(uri string, node any, idKeyword string) string {
	m, ok := node.(map[string]any)
	if !ok {
		return uri
	}
	id, ok := m[idKeyword].(string)
	if !ok || id == "" {
		return uri
	}
	return joinURIString(uri, id)
}

// appendPointer extends an instance pointer with one property token,
// RFC 6901-escaping the token.
func appendPointer(pointer, token string) string {
	return pointer + jsonpointer.Format(token)
}

// appendPointerIndex extends an instance pointer with one array index.
func appendPointerIndex(pointer string, index int) string {
	return pointer + "/" + strconv.Itoa(index)
}
