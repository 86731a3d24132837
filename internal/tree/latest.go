package tree

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// level describes one layer of the content layout below the root.
type level struct {
	kind  childKind
	valid func(name string) bool
}

var layout = []level{
	{dirKind, validYear},
	{dirKind, validMonth},
	{dirKind, validDay},
	{fileKind, validEntry},
}

// Latest returns the newest entry under root without loading the whole
// tree. It walks the largest valid name at each level and backs off to
// the next one when a branch holds no entry.
func Latest(fs afero.Fs, root string) (*Entry, error) {
	ok, err := afero.DirExists(fs, root)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}

	path, err := latestUnder(fs, root, 0)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoEntries, root)
	}
	return NewBuilder(fs, nil).EntryFromPath(path)
}

func latestUnder(fs afero.Fs, dir string, depth int) (string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	lvl := layout[depth]
	var names []string
	for _, info := range infos {
		if lvl.kind.matches(info) && lvl.valid(info.Name()) {
			names = append(names, info.Name())
		}
	}
	// Names are fixed-width digits, so lexical order is numeric order.
	slices.Sort(names)
	slices.Reverse(names)

	for _, name := range names {
		child := filepath.Join(dir, name)
		if depth == len(layout)-1 {
			return child, nil
		}
		found, err := latestUnder(fs, child, depth+1)
		if err != nil {
			return "", err
		}
		if found != "" {
			return found, nil
		}
	}
	return "", nil
}
