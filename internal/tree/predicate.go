package tree

// ReaderPredicate decides while the tree is read whether a path is
// loaded at all.
type ReaderPredicate interface {
	SearchIn(path string) bool
}

// PredicateFunc adapts a function to ReaderPredicate.
type PredicateFunc func(path string) bool

// SearchIn calls f(path).
func (f PredicateFunc) SearchIn(path string) bool {
	return f(path)
}

// AnyOrNone accepts path when no predicates are given, and otherwise
// when at least one predicate accepts it.
func AnyOrNone(predicates []ReaderPredicate, path string) bool {
	if len(predicates) == 0 {
		return true
	}
	for _, p := range predicates {
		if p.SearchIn(path) {
			return true
		}
	}
	return false
}
