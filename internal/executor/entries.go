package executor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TheNeikos/diary/internal/atomicfile"
	"github.com/TheNeikos/diary/internal/command"
	"github.com/TheNeikos/diary/internal/meta"
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/TheNeikos/diary/internal/ui"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrEntryExists   = errors.New("entry already exists")
	ErrEntryNotFound = errors.New("entry not found")
	ErrAmbiguousHash = errors.New("ambiguous hash")
	ErrEmptyContent  = errors.New("empty content")
)

// WriteEntry stores content as a new entry at time at, truncated to the
// second. An entry already stored for that second is never overwritten.
func WriteEntry(fs afero.Fs, root string, at time.Time, content string) (*tree.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	path := tree.EntryPath(root, at.Truncate(time.Second))
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrEntryExists, path)
		}
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		fs.Remove(path)
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}

	return tree.NewBuilder(fs, nil).EntryFromPath(path)
}

// FindEntry returns the entry whose hash starts with prefix.
func FindEntry(entries []*tree.Entry, prefix string) (*tree.Entry, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, fmt.Errorf("%w: empty hash", ErrEntryNotFound)
	}

	var found []*tree.Entry
	for _, e := range entries {
		if strings.HasPrefix(e.Hash(), prefix) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, prefix)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %s matches %d entries", ErrAmbiguousHash, prefix, len(found))
}

func (x *Executor) modify(t *tree.Tree, c command.Command) error {
	switch c.Kind {
	case command.Edit:
		return x.edit(t, c.Arg())
	case command.Tag:
		return x.label(t, "tag", c.Arg(), meta.Labels{Tags: []string{c.Arg()}})
	case command.Categorize:
		return x.label(t, "category", c.Arg(), meta.Labels{Categories: []string{c.Arg()}})
	}
	return fmt.Errorf("--%s does not modify entries", c.Kind)
}

func (x *Executor) edit(t *tree.Tree, prefix string) error {
	entries := t.Entries()

	var e *tree.Entry
	if prefix == "" || prefix == command.Table[command.Edit].Default {
		if len(entries) == 0 {
			return fmt.Errorf("%w: %s", tree.ErrNoEntries, t.Path())
		}
		e = entries[len(entries)-1]
	} else {
		var err error
		if e, err = FindEntry(entries, prefix); err != nil {
			return err
		}
	}
	if x.Editor == nil {
		return fmt.Errorf("no editor available to edit %s", e.Path())
	}

	content, changed, err := x.Editor.Edit(string(e.Raw()))
	if err != nil {
		return err
	}
	if !changed {
		ui.FormatNoChanges(x.Out, e)
		return nil
	}
	if err := atomicfile.WriteFile(x.FS, e.Path(), []byte(content), 0); err != nil {
		return fmt.Errorf("writing %s: %w", e.Path(), err)
	}

	updated, err := tree.NewBuilder(x.FS, x.logger()).EntryFromPath(e.Path())
	if err != nil {
		return err
	}
	x.logger().Debug("entry updated", zap.String("path", e.Path()))
	if x.JSON {
		return ui.FormatJSON(x.Out, ui.ToEntryJSON(updated, false))
	}
	ui.FormatEntryUpdated(x.Out, updated)
	return nil
}

// label records add for every entry left in t.
func (x *Executor) label(t *tree.Tree, kind, name string, add meta.Labels) error {
	result := ui.LabelResult{Kind: kind, Label: name, Entries: []string{}}
	for _, e := range t.Entries() {
		if err := meta.AddEntryLabels(x.FS, filepath.Dir(e.Path()), filepath.Base(e.Path()), add); err != nil {
			return err
		}
		result.Entries = append(result.Entries, e.Path())
	}
	x.logger().Debug("entries labeled", zap.String(kind, name), zap.Int("count", len(result.Entries)))

	if x.JSON {
		return ui.FormatJSON(x.Out, result)
	}
	ui.FormatLabeled(x.Out, kind, name, len(result.Entries))
	return nil
}
