package jsonschemer

// idIndex returns the handle's identifier index: a mapping from fully
// qualified URI to the subschema it identifies. The index is built at most
// once per handle by a pre-order walk of the root document and never evicted;
// concurrent readers observe the fully populated map.
func (s *Schema) idIndex() map[string]any {
	s.idsOnce.Do(func() {
		s.ids = map[string]any{}
		s.collectIDs(s.root, "")
	})
	return s.ids
}

// collectIDs registers every identifier-anchored subschema reachable through
// definitions. Applicator subschemas are deliberately not indexed: the ref
// resolver reaches them through live pointer evaluation instead.
func (s *Schema) collectIDs(node any, base string) {
	switch n := node.(type) {
	case map[string]any:
		newBase := base
		if id, ok := n[s.draft.idKeyword].(string); ok && id != "" {
			joined := joinURIString(base, id)
			if joined != "" && joined != base {
				s.ids[joined] = n
				newBase = joined
			}
		}
		if defs, ok := n["definitions"].(map[string]any); ok {
			for _, key := range sortedKeys(defs) {
				s.collectIDs(defs[key], newBase)
			}
		}
	case []any:
		for _, element := range n {
			s.collectIDs(element, base)
		}
	}
}
