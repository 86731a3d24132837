package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/TheNeikos/diary/internal/tree"
)

// TimeFormat is how entry times are shown.
const TimeFormat = "2006-01-02 15:04:05"

// FormatEntryList writes one "[hash] time" line per entry.
func FormatEntryList(w io.Writer, entries []*tree.Entry, theme Theme) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No diary entries found.")
		return
	}
	hash := theme.HashStyle()
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", hash.Render("["+e.AbbrevHash()+"]"), e.Time().Format(TimeFormat))
	}
}

// FormatCat writes every entry under a "--- time" header, each followed
// by a blank line. render turns entry text into display text and may be
// nil.
func FormatCat(w io.Writer, entries []*tree.Entry, theme Theme, render func(string) string) {
	header := theme.HeaderStyle()
	for _, e := range entries {
		content := e.Content()
		if render != nil {
			content = render(content)
		}
		fmt.Fprintln(w, header.Render("--- "+e.Time().Format(TimeFormat)))
		fmt.Fprintln(w, content)
		fmt.Fprintln(w)
	}
}

// FormatRaw writes the file bytes of every entry, each followed by a
// blank line.
func FormatRaw(w io.Writer, entries []*tree.Entry) {
	for _, e := range entries {
		w.Write(e.Raw())
		fmt.Fprintln(w)
	}
}

// FormatEntryCreated formats a creation confirmation message.
func FormatEntryCreated(w io.Writer, e *tree.Entry) {
	fmt.Fprintf(w, "Created entry [%s] %s\n", e.AbbrevHash(), e.Time().Format(TimeFormat))
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e *tree.Entry) {
	fmt.Fprintf(w, "Updated entry [%s] %s\n", e.AbbrevHash(), e.Time().Format(TimeFormat))
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, e *tree.Entry) {
	fmt.Fprintf(w, "No changes detected for entry [%s].\n", e.AbbrevHash())
}

// FormatLabeled reports how many entries got a label.
func FormatLabeled(w io.Writer, kind, label string, n int) {
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	fmt.Fprintf(w, "Added %s %q to %d %s.\n", kind, label, n, noun)
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// LabelResult is the JSON representation of a tag or category change.
type LabelResult struct {
	Kind    string   `json:"kind"`
	Label   string   `json:"label"`
	Entries []string `json:"entries"`
}

// EntryJSON is the JSON representation of an entry.
type EntryJSON struct {
	Hash       string    `json:"hash"`
	Abbrev     string    `json:"abbrev"`
	Time       time.Time `json:"time"`
	Path       string    `json:"path"`
	Tags       []string  `json:"tags"`
	Categories []string  `json:"categories"`
	Content    string    `json:"content,omitempty"`
}

// DayJSON is the JSON representation of a day.
type DayJSON struct {
	Day     int         `json:"day"`
	Tags    []string    `json:"tags"`
	Entries []EntryJSON `json:"entries"`
}

// MonthJSON is the JSON representation of a month.
type MonthJSON struct {
	Month int       `json:"month"`
	Name  string    `json:"name"`
	Tags  []string  `json:"tags"`
	Days  []DayJSON `json:"days"`
}

// YearJSON is the JSON representation of a year.
type YearJSON struct {
	Year   int         `json:"year"`
	Tags   []string    `json:"tags"`
	Months []MonthJSON `json:"months"`
}

// TreeJSON is the JSON representation of a loaded tree.
type TreeJSON struct {
	Path  string     `json:"path"`
	Years []YearJSON `json:"years"`
}

// ToEntryJSON converts an entry; content is only included when asked for.
func ToEntryJSON(e *tree.Entry, withContent bool) EntryJSON {
	j := EntryJSON{
		Hash:       e.Hash(),
		Abbrev:     e.AbbrevHash(),
		Time:       e.Time(),
		Path:       e.Path(),
		Tags:       nonNil(e.Tags()),
		Categories: nonNil(e.Categories()),
	}
	if withContent {
		j.Content = e.Content()
	}
	return j
}

// ToTreeJSON converts a tree, keeping its year, month and day nesting.
func ToTreeJSON(t *tree.Tree, withContent bool) TreeJSON {
	out := TreeJSON{Path: t.Path(), Years: []YearJSON{}}
	for _, y := range t.Years {
		yj := YearJSON{Year: y.Year(), Tags: nonNil(y.Tags()), Months: []MonthJSON{}}
		for _, m := range y.Months {
			mj := MonthJSON{Month: m.Index(), Name: m.Name(), Tags: nonNil(m.Tags()), Days: []DayJSON{}}
			for _, d := range m.Days {
				dj := DayJSON{Day: d.Index(), Tags: nonNil(d.Tags()), Entries: []EntryJSON{}}
				for _, e := range d.Entries {
					dj.Entries = append(dj.Entries, ToEntryJSON(e, withContent))
				}
				mj.Days = append(mj.Days, dj)
			}
			yj.Months = append(yj.Months, mj)
		}
		out.Years = append(out.Years, yj)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
