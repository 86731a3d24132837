// Package tree loads a dated diary directory into an in-memory tree of
// years, months, days and entries, and prunes that tree with structural
// filters.
//
// The on-disk layout is <root>/<YYYY>/<MM>/<DD>/<HH-MM-SS>, where every
// leaf is a plain text file holding one entry.
package tree

import (
	"errors"
	"slices"
)

// Sentinel errors for tree operations.
var (
	ErrPathNotFound  = errors.New("path not found")
	ErrMalformedPath = errors.New("malformed path")
	ErrNoEntries     = errors.New("no entries")
)

// Node is implemented by every element of the tree.
type Node interface {
	Path() string
	IndexString(width int) string
}

// Labeled is implemented by nodes that carry tags and categories.
type Labeled interface {
	Node
	Tags() []string
	Categories() []string
	HasTag(name string) bool
	InCategory(name string) bool
}

// labels holds the tag and category sets shared by all node kinds.
type labels struct {
	tags       []string
	categories []string
}

func (l labels) Tags() []string       { return slices.Clone(l.tags) }
func (l labels) Categories() []string { return slices.Clone(l.categories) }

func (l labels) HasTag(name string) bool     { return slices.Contains(l.tags, name) }
func (l labels) InCategory(name string) bool { return slices.Contains(l.categories, name) }

// Tree is the root of a loaded content directory.
type Tree struct {
	path  string
	Years []*Year
}

// Path returns the content directory the tree was built from.
func (t *Tree) Path() string { return t.path }

// IndexString returns the content directory; the root has no index.
func (t *Tree) IndexString(int) string { return t.path }

// Entries returns every entry of the tree in chronological order.
func (t *Tree) Entries() []*Entry {
	var entries []*Entry
	for _, y := range t.Years {
		for _, m := range y.Months {
			for _, d := range m.Days {
				entries = append(entries, d.Entries...)
			}
		}
	}
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		return a.time.Compare(b.time)
	})
	return entries
}
