package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheNeikos/diary/internal/meta"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// errUnreadable marks a directory or file that exists but could not be
// read. The node is dropped; its siblings are still loaded.
var errUnreadable = errors.New("unreadable")

// childKind is the kind of directory entry a level expects.
type childKind int

const (
	dirKind childKind = iota
	fileKind
)

func (k childKind) matches(info os.FileInfo) bool {
	if k == dirKind {
		return info.IsDir()
	}
	return info.Mode().IsRegular()
}

// Builder reads a content directory into a Tree. Every child path is
// checked against the reader predicates before it is loaded.
type Builder struct {
	fs         afero.Fs
	logger     *zap.Logger
	predicates []ReaderPredicate
}

// NewBuilder returns a Builder reading from fs. A nil logger discards logs.
func NewBuilder(fs afero.Fs, logger *zap.Logger, predicates ...ReaderPredicate) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{fs: fs, logger: logger, predicates: predicates}
}

// Build loads the tree rooted at root. It fails with ErrPathNotFound when
// root is not an existing directory, and with ErrMalformedPath when an
// entry file name cannot be read as a time.
func (b *Builder) Build(root string) (*Tree, error) {
	ok, err := afero.DirExists(b.fs, root)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}

	years, err := subsFromPath(b, root, dirKind, b.YearFromPath)
	if err != nil {
		return nil, fmt.Errorf("building tree for %s: %w", root, err)
	}
	b.logger.Debug("tree built", zap.String("path", root), zap.Int("years", len(years)))
	return &Tree{path: root, Years: years}, nil
}

// YearFromPath loads the year directory at path. It returns nil when
// path is not a year directory.
func (b *Builder) YearFromPath(path string) (*Year, error) {
	if !validYear(filepath.Base(path)) {
		b.logger.Debug("skipping malformed year", zap.String("path", path))
		return nil, nil
	}
	months, err := subsFromPath(b, path, dirKind, b.MonthFromPath)
	if err != nil {
		return nil, b.dropUnreadable(err)
	}
	return &Year{
		labels: b.dirLabels(path),
		path:   path,
		year:   IndexFromPath(path, 4),
		Months: months,
	}, nil
}

// MonthFromPath loads the month directory at path. It returns nil when
// path is not a month directory.
func (b *Builder) MonthFromPath(path string) (*Month, error) {
	if !validMonth(filepath.Base(path)) {
		b.logger.Debug("skipping malformed month", zap.String("path", path))
		return nil, nil
	}
	days, err := subsFromPath(b, path, dirKind, b.DayFromPath)
	if err != nil {
		return nil, b.dropUnreadable(err)
	}
	return &Month{
		labels: b.dirLabels(path),
		path:   path,
		index:  IndexFromPath(path, 2),
		Days:   days,
	}, nil
}

// DayFromPath loads the day directory at path and its entries. It
// returns nil when path is not a day directory.
func (b *Builder) DayFromPath(path string) (*Day, error) {
	if !validDay(filepath.Base(path)) {
		b.logger.Debug("skipping malformed day", zap.String("path", path))
		return nil, nil
	}
	sidecar := b.sidecar(path)
	entries, err := subsFromPath(b, path, fileKind, func(p string) (*Entry, error) {
		return b.entry(p, sidecar.Entries[filepath.Base(p)])
	})
	if err != nil {
		return nil, b.dropUnreadable(err)
	}
	return &Day{
		labels:  labels{tags: sidecar.Tags, categories: sidecar.Categories},
		path:    path,
		index:   IndexFromPath(path, 2),
		Entries: entries,
	}, nil
}

// EntryFromPath loads the entry file at path. It returns nil when the
// file name is not entry-shaped, and ErrMalformedPath when it is but
// does not hold a valid time.
func (b *Builder) EntryFromPath(path string) (*Entry, error) {
	sidecar := b.sidecar(filepath.Dir(path))
	return b.entry(path, sidecar.Entries[filepath.Base(path)])
}

func (b *Builder) entry(path string, extra meta.Labels) (*Entry, error) {
	if !validEntry(filepath.Base(path)) {
		b.logger.Debug("skipping stray file", zap.String("path", path))
		return nil, nil
	}
	t, err := TimeFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := afero.ReadFile(b.fs, path)
	if err != nil {
		b.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	return NewEntry(path, t, raw, extra), nil
}

// subsFromPath lists dir once and loads every child of the expected kind
// that passes the reader predicates. Absent children are left out.
func subsFromPath[T any](b *Builder, dir string, kind childKind, from func(string) (*T, error)) ([]*T, error) {
	infos, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errUnreadable, dir, err)
	}

	nodes := make([]*T, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if name == "." || name == ".." || strings.HasPrefix(name, ".") {
			continue
		}
		if !kind.matches(info) {
			continue
		}
		child := filepath.Join(dir, name)
		if !AnyOrNone(b.predicates, child) {
			b.logger.Debug("skipped by reader predicates", zap.String("path", child))
			continue
		}
		node, err := from(child)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// dropUnreadable logs and swallows errUnreadable; other errors pass through.
func (b *Builder) dropUnreadable(err error) error {
	if errors.Is(err, errUnreadable) {
		b.logger.Warn("skipping unreadable directory", zap.Error(err))
		return nil
	}
	return err
}

func (b *Builder) sidecar(dir string) meta.Sidecar {
	s, err := meta.Load(b.fs, dir)
	if err != nil {
		b.logger.Warn("ignoring metadata", zap.Error(err))
		return meta.Sidecar{}
	}
	return s
}

func (b *Builder) dirLabels(dir string) labels {
	s := b.sidecar(dir)
	return labels{tags: s.Tags, categories: s.Categories}
}
