// Package command describes the diary commands: their flags, their
// groups and which of them may be combined in a single invocation.
// The table is used both to register CLI flags and to validate the
// parsed command list before anything is executed.
package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrIncompatible is returned when two commands may not be combined.
	ErrIncompatible = errors.New("incompatible commands")
	// ErrArity is returned when a command gets the wrong number of
	// arguments or an argument it does not accept.
	ErrArity = errors.New("wrong arguments")
)

// Kind identifies a command.
type Kind int

const (
	List Kind = iota
	Cat
	Last
	Between
	LimitIn
	Year
	Month
	Day
	TagFilter
	CategoryFilter
	Add
	Edit
	Tag
	Categorize
)

// String returns the flag name of the kind.
func (k Kind) String() string {
	if s, ok := Table[k]; ok {
		return s.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Group is the role a command plays during execution.
type Group int

const (
	// GroupQuery commands print the entries of the tree.
	GroupQuery Group = iota
	// GroupLimit commands decide which paths are read at all.
	GroupLimit
	// GroupFilter commands prune the tree after it is read.
	GroupFilter
	// GroupModify commands change the entries of the tree.
	GroupModify
	// GroupAdd commands create a new entry without reading the tree.
	GroupAdd
)

func (g Group) String() string {
	switch g {
	case GroupQuery:
		return "query"
	case GroupLimit:
		return "limit"
	case GroupFilter:
		return "filter"
	case GroupModify:
		return "modify"
	case GroupAdd:
		return "add"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// FlagType is how a command is spelled on the command line.
type FlagType string

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeString      FlagType = "string"
	FlagTypeOptional    FlagType = "optional"    // string flag whose value may be omitted
	FlagTypeStringArray FlagType = "stringArray" // repeatable string flag
)

// Unbounded is the Arity.Max of commands taking any number of arguments.
const Unbounded = -1

// Arity is the number of arguments a command takes.
type Arity struct {
	Min int
	Max int
}

func (a Arity) allows(n int) bool {
	return n >= a.Min && (a.Max == Unbounded || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max == Unbounded:
		return fmt.Sprintf("at least %d arguments", a.Min)
	case a.Max == 0:
		return "no arguments"
	case a.Min == 1 && a.Max == 1:
		return "one argument"
	default:
		return fmt.Sprintf("%d to %d arguments", a.Min, a.Max)
	}
}

// Spec holds the metadata of one command kind.
type Spec struct {
	Kind        Kind
	Name        string   // flag name, e.g. "between"
	Short       string   // one letter shorthand, if any
	Description string   // help text
	Type        FlagType // flag type
	Default     string   // value of an optional flag given without one
	Choices     []string // accepted argument values, empty for any
	Group       Group
	Arity       Arity

	// A command conflicts with every command of another kind that is
	// listed here or belongs to one of the listed groups.
	ConflictKinds  []Kind
	ConflictGroups []Group
}

// Table holds the spec of every command kind.
var Table = map[Kind]Spec{
	List: {
		Kind:           List,
		Name:           "list",
		Description:    "List entries only",
		Type:           FlagTypeBool,
		Group:          GroupQuery,
		ConflictGroups: []Group{GroupQuery},
	},
	Cat: {
		Kind:           Cat,
		Name:           "cat",
		Short:          "c",
		Description:    "Print entries; --cat=raw prints the files unchanged",
		Type:           FlagTypeOptional,
		Default:        "text",
		Choices:        []string{"text", "raw"},
		Group:          GroupQuery,
		Arity:          Arity{0, 1},
		ConflictGroups: []Group{GroupQuery},
	},
	Last: {
		Kind:           Last,
		Name:           "last",
		Short:          "l",
		Description:    "Print the latest entry",
		Type:           FlagTypeBool,
		Group:          GroupQuery,
		ConflictGroups: []Group{GroupQuery, GroupLimit, GroupFilter, GroupModify},
	},
	Between: {
		Kind:           Between,
		Name:           "between",
		Short:          "b",
		Description:    "Limit the search to a range, e.g. 2013..2014 or 2013-01..2013-02",
		Type:           FlagTypeString,
		Group:          GroupLimit,
		Arity:          Arity{1, 1},
		ConflictGroups: []Group{GroupLimit},
	},
	LimitIn: {
		Kind:           LimitIn,
		Name:           "limit-in",
		Description:    "Limit the search to a year, year-month or year-month-day",
		Type:           FlagTypeString,
		Group:          GroupLimit,
		Arity:          Arity{1, 1},
		ConflictGroups: []Group{GroupLimit},
	},
	Year: {
		Kind:          Year,
		Name:          "year",
		Description:   "Limit the search to a year, repeatable",
		Type:          FlagTypeStringArray,
		Group:         GroupLimit,
		Arity:         Arity{1, 1},
		ConflictKinds: []Kind{Between, LimitIn},
	},
	Month: {
		Kind:          Month,
		Name:          "month",
		Description:   "Limit the search to a month of any year, repeatable",
		Type:          FlagTypeStringArray,
		Group:         GroupLimit,
		Arity:         Arity{1, 1},
		ConflictKinds: []Kind{Between, LimitIn},
	},
	Day: {
		Kind:          Day,
		Name:          "day",
		Description:   "Limit the search to a day of any month, repeatable",
		Type:          FlagTypeStringArray,
		Group:         GroupLimit,
		Arity:         Arity{1, 1},
		ConflictKinds: []Kind{Between, LimitIn},
	},
	TagFilter: {
		Kind:        TagFilter,
		Name:        "in-tag",
		Description: "Only show entries with a tag, repeatable",
		Type:        FlagTypeStringArray,
		Group:       GroupFilter,
		Arity:       Arity{1, 1},
	},
	CategoryFilter: {
		Kind:        CategoryFilter,
		Name:        "in-category",
		Description: "Only show entries in a category, repeatable",
		Type:        FlagTypeStringArray,
		Group:       GroupFilter,
		Arity:       Arity{1, 1},
	},
	Add: {
		Kind:           Add,
		Name:           "add",
		Description:    "Add an entry from the arguments, from stdin with -, or in the editor",
		Type:           FlagTypeBool,
		Group:          GroupAdd,
		Arity:          Arity{0, Unbounded},
		ConflictGroups: []Group{GroupQuery, GroupLimit, GroupFilter, GroupModify},
	},
	Edit: {
		Kind:           Edit,
		Name:           "edit",
		Description:    "Edit the entry with the given hash prefix, or the latest one",
		Type:           FlagTypeOptional,
		Default:        "latest",
		Group:          GroupModify,
		Arity:          Arity{0, 1},
		ConflictGroups: []Group{GroupLimit, GroupFilter, GroupModify, GroupAdd},
	},
	Tag: {
		Kind:          Tag,
		Name:          "tag",
		Description:   "Tag the selected entries, repeatable",
		Type:          FlagTypeStringArray,
		Group:         GroupModify,
		Arity:         Arity{1, 1},
		ConflictKinds: []Kind{Edit},
	},
	Categorize: {
		Kind:          Categorize,
		Name:          "category",
		Description:   "File the selected entries under a category, repeatable",
		Type:          FlagTypeStringArray,
		Group:         GroupModify,
		Arity:         Arity{1, 1},
		ConflictKinds: []Kind{Edit},
	},
}

// Kinds returns every command kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(Table))
	for k := range Table {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Command is one parsed command with its arguments.
type Command struct {
	Kind Kind
	Args []string
}

// New returns a command of kind with args, checking them against the
// command's arity and choices.
func New(kind Kind, args ...string) (Command, error) {
	spec, ok := Table[kind]
	if !ok {
		return Command{}, fmt.Errorf("unknown command kind %d", int(kind))
	}
	if !spec.Arity.allows(len(args)) {
		return Command{}, fmt.Errorf("%w: --%s takes %s, got %d", ErrArity, spec.Name, spec.Arity, len(args))
	}
	if len(spec.Choices) > 0 {
		for _, a := range args {
			if !slices.Contains(spec.Choices, a) {
				return Command{}, fmt.Errorf("%w: --%s accepts %s, got %q",
					ErrArity, spec.Name, strings.Join(spec.Choices, " or "), a)
			}
		}
	}
	return Command{Kind: kind, Args: args}, nil
}

// Spec returns the table entry of the command's kind.
func (c Command) Spec() Spec { return Table[c.Kind] }

// Group returns the group of the command's kind.
func (c Command) Group() Group { return Table[c.Kind].Group }

// Arg returns the first argument, or "" when there is none.
func (c Command) Arg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

func (c Command) String() string {
	s := "--" + c.Spec().Name
	if len(c.Args) > 0 {
		s += " " + strings.Join(c.Args, " ")
	}
	return s
}

// IncompatibleError reports two commands that may not be combined.
type IncompatibleError struct {
	A, B Kind
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s: --%s cannot be combined with --%s", ErrIncompatible, e.A, e.B)
}

func (e *IncompatibleError) Unwrap() error { return ErrIncompatible }

// conflicts reports whether a rules out b.
func conflicts(a, b Kind) bool {
	if a == b {
		return false
	}
	spec := Table[a]
	return slices.Contains(spec.ConflictKinds, b) || slices.Contains(spec.ConflictGroups, Table[b].Group)
}

// Validate checks every pair of commands. Commands of the same kind
// never conflict; a conflict declared on either side is enough.
func Validate(cmds []Command) error {
	for i, a := range cmds {
		for _, b := range cmds[i+1:] {
			if conflicts(a.Kind, b.Kind) || conflicts(b.Kind, a.Kind) {
				return &IncompatibleError{A: a.Kind, B: b.Kind}
			}
		}
	}
	return nil
}

// Select returns the commands of cmds in group g, in order.
func Select(cmds []Command, g Group) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Group() == g {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first command of kind k.
func Find(cmds []Command, k Kind) (Command, bool) {
	for _, c := range cmds {
		if c.Kind == k {
			return c, true
		}
	}
	return Command{}, false
}
