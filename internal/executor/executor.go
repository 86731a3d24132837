// Package executor runs a validated list of diary commands against a
// content directory.
//
// Add and Last run on their own without reading the tree. Every other
// invocation reads the tree through the limit commands, prunes it with
// the filter commands, applies the modify commands and finally prints
// it with the query commands, listing entries when none was given.
package executor

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TheNeikos/diary/internal/command"
	"github.com/TheNeikos/diary/internal/filter"
	"github.com/TheNeikos/diary/internal/limit"
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/TheNeikos/diary/internal/ui"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ContentEditor edits text interactively.
type ContentEditor interface {
	Edit(initial string) (content string, changed bool, err error)
}

// Executor holds everything commands need to run.
type Executor struct {
	FS         afero.Fs
	ContentDir string
	Logger     *zap.Logger
	Out        io.Writer
	In         io.Reader
	Editor     ContentEditor

	JSON          bool
	MarkdownStyle string // glamour style for --cat; empty prints plain text
	Pager         bool
	Theme         ui.Theme

	Now func() time.Time
}

func (x *Executor) logger() *zap.Logger {
	if x.Logger == nil {
		return zap.NewNop()
	}
	return x.Logger
}

// Clock returns the current time used for new entries.
func (x *Executor) Clock() time.Time {
	if x.Now == nil {
		return time.Now()
	}
	return x.Now()
}

// Run validates cmds and executes them.
func (x *Executor) Run(cmds []command.Command) error {
	if err := command.Validate(cmds); err != nil {
		return err
	}
	x.logger().Debug("running commands", zap.Stringers("commands", cmds))

	if c, ok := command.Find(cmds, command.Add); ok {
		return x.add(c.Args)
	}
	if _, ok := command.Find(cmds, command.Last); ok {
		return x.last()
	}

	t, err := x.Load(cmds)
	if err != nil {
		return err
	}

	modify := command.Select(cmds, command.GroupModify)
	for _, c := range modify {
		if err := x.modify(t, c); err != nil {
			return err
		}
	}

	query := command.Select(cmds, command.GroupQuery)
	if len(query) == 0 {
		if len(modify) > 0 {
			return nil
		}
		query = []command.Command{{Kind: command.List}}
	} else if len(modify) > 0 {
		// Labels and content changed on disk; show what is there now.
		if t, err = x.Load(cmds); err != nil {
			return err
		}
	}
	for _, c := range query {
		if err := x.query(t, c); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the content directory limited by the limit commands of cmds
// and pruned by their filter commands.
func (x *Executor) Load(cmds []command.Command) (*tree.Tree, error) {
	if err := command.Validate(cmds); err != nil {
		return nil, err
	}

	var predicates []tree.ReaderPredicate
	for _, c := range command.Select(cmds, command.GroupLimit) {
		p, err := Predicate(c)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, p)
	}

	var filters []tree.StructuralFilter
	for _, c := range command.Select(cmds, command.GroupFilter) {
		f, err := Filter(c)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	t, err := tree.NewBuilder(x.FS, x.logger(), predicates...).Build(x.ContentDir)
	if err != nil {
		return nil, err
	}
	tree.Prune(t, filters...)
	return t, nil
}

// Predicate returns the reader predicate of a limit command.
func Predicate(c command.Command) (tree.ReaderPredicate, error) {
	switch c.Kind {
	case command.Between:
		return limit.ParseRange(c.Arg())
	case command.LimitIn:
		d, err := limit.ParseDate(c.Arg())
		if err != nil {
			return nil, err
		}
		return limit.In(d), nil
	case command.Year:
		return limit.ParseYear(c.Arg())
	case command.Month:
		return limit.ParseMonth(c.Arg())
	case command.Day:
		return limit.ParseDay(c.Arg())
	}
	return nil, fmt.Errorf("--%s is not a limit", c.Kind)
}

// Filter returns the structural filter of a filter command.
func Filter(c command.Command) (tree.StructuralFilter, error) {
	switch c.Kind {
	case command.TagFilter:
		return filter.Tag(c.Arg()), nil
	case command.CategoryFilter:
		return filter.Category(c.Arg()), nil
	}
	return nil, fmt.Errorf("--%s is not a filter", c.Kind)
}

func (x *Executor) query(t *tree.Tree, c command.Command) error {
	switch c.Kind {
	case command.List:
		if x.JSON {
			return ui.FormatJSON(x.Out, ui.ToTreeJSON(t, false))
		}
		var buf bytes.Buffer
		ui.FormatEntryList(&buf, t.Entries(), x.Theme)
		return ui.OutputOrPage(x.Out, buf.String(), x.Pager, x.Theme)
	case command.Cat:
		if x.JSON {
			return ui.FormatJSON(x.Out, ui.ToTreeJSON(t, true))
		}
		return x.cat(t.Entries(), c.Arg() == "raw")
	}
	return fmt.Errorf("--%s is not a query", c.Kind)
}

func (x *Executor) cat(entries []*tree.Entry, raw bool) error {
	var buf bytes.Buffer
	if raw {
		ui.FormatRaw(&buf, entries)
		_, err := x.Out.Write(buf.Bytes())
		return err
	}

	var render func(string) string
	if x.MarkdownStyle != "" {
		render = func(s string) string { return ui.RenderMarkdown(s, 80, x.MarkdownStyle) }
	}
	ui.FormatCat(&buf, entries, x.Theme, render)
	return ui.OutputOrPage(x.Out, buf.String(), x.Pager, x.Theme)
}

func (x *Executor) last() error {
	e, err := tree.Latest(x.FS, x.ContentDir)
	if err != nil {
		return err
	}
	if x.JSON {
		return ui.FormatJSON(x.Out, ui.ToEntryJSON(e, true))
	}
	return x.cat([]*tree.Entry{e}, false)
}

func (x *Executor) add(args []string) error {
	content, err := x.addContent(args)
	if err != nil {
		return err
	}
	e, err := WriteEntry(x.FS, x.ContentDir, x.Clock(), content)
	if err != nil {
		return err
	}
	x.logger().Debug("entry created", zap.String("path", e.Path()))

	if x.JSON {
		return ui.FormatJSON(x.Out, ui.ToEntryJSON(e, false))
	}
	ui.FormatEntryCreated(x.Out, e)
	return nil
}

// addContent takes the entry text from the arguments, from stdin for a
// single "-", or from the editor when there are no arguments.
func (x *Executor) addContent(args []string) (string, error) {
	switch {
	case len(args) == 1 && args[0] == "-":
		if x.In == nil {
			return "", fmt.Errorf("%w: no input", ErrEmptyContent)
		}
		data, err := io.ReadAll(x.In)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " ") + "\n", nil
	case x.Editor == nil:
		return "", fmt.Errorf("%w: no editor available", ErrEmptyContent)
	}
	content, _, err := x.Editor.Edit("")
	return content, err
}
