// Package filter provides structural filters that select loaded nodes
// by their labels.
package filter

import "github.com/TheNeikos/diary/internal/tree"

// Tag matches nodes carrying the tag.
type Tag string

// Matches implements tree.StructuralFilter.
func (t Tag) Matches(n tree.Node) bool {
	l, ok := n.(tree.Labeled)
	return ok && l.HasTag(string(t))
}

// Category matches nodes filed under the category.
type Category string

// Matches implements tree.StructuralFilter.
func (c Category) Matches(n tree.Node) bool {
	l, ok := n.(tree.Labeled)
	return ok && l.InCategory(string(c))
}
