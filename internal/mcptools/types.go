package mcptools

import (
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/TheNeikos/diary/internal/ui"
)

// ListEntriesInput is the input schema for the list_entries MCP tool.
type ListEntriesInput struct {
	Between    string   `json:"between,omitempty" jsonschema-description:"Date range FROM..TO, each YYYY, YYYY-MM or YYYY-MM-DD (inclusive)"`
	In         string   `json:"in,omitempty" jsonschema-description:"Single year, month or day as YYYY, YYYY-MM or YYYY-MM-DD"`
	Years      []string `json:"years,omitempty" jsonschema-description:"Only entries in any of these years"`
	Months     []string `json:"months,omitempty" jsonschema-description:"Only entries in any of these months (1-12) of any year"`
	Days       []string `json:"days,omitempty" jsonschema-description:"Only entries on any of these days of the month (1-31)"`
	Tags       []string `json:"tags,omitempty" jsonschema-description:"Only entries carrying all of these tags"`
	Categories []string `json:"categories,omitempty" jsonschema-description:"Only entries in all of these categories"`
	Limit      int      `json:"limit,omitempty" jsonschema-description:"Return at most this many of the newest entries"`
}

// ListEntriesOutput is the output schema for the list_entries MCP tool.
type ListEntriesOutput struct {
	Entries []EntryResult `json:"entries"`
}

// CatEntryInput is the input schema for the cat_entry MCP tool.
type CatEntryInput struct {
	Hash string `json:"hash,omitempty" jsonschema-description:"Hash or unique hash prefix of the entry; empty for the latest entry"`
}

// CatEntryOutput is the output schema for the cat_entry MCP tool.
type CatEntryOutput struct {
	Entry EntryResult `json:"entry"`
}

// AddEntryInput is the input schema for the add_entry MCP tool.
type AddEntryInput struct {
	Content    string   `json:"content" jsonschema-description:"Entry text, markdown with optional front matter"`
	Tags       []string `json:"tags,omitempty" jsonschema-description:"Tags to attach to the new entry"`
	Categories []string `json:"categories,omitempty" jsonschema-description:"Categories to attach to the new entry"`
}

// AddEntryOutput is the output schema for the add_entry MCP tool.
type AddEntryOutput struct {
	Entry EntryResult `json:"entry"`
}

// LabelEntryInput is the input schema for the label_entry MCP tool.
type LabelEntryInput struct {
	Hash       string   `json:"hash" jsonschema-description:"Hash or unique hash prefix of the entry"`
	Tags       []string `json:"tags,omitempty" jsonschema-description:"Tags to add"`
	Categories []string `json:"categories,omitempty" jsonschema-description:"Categories to add"`
}

// LabelEntryOutput is the output schema for the label_entry MCP tool.
type LabelEntryOutput struct {
	Entry EntryResult `json:"entry"`
}

// EntryResult is the common output format for entry-related MCP tools.
type EntryResult struct {
	Hash       string   `json:"hash"`
	Abbrev     string   `json:"abbrev"`
	Time       string   `json:"time"`
	Path       string   `json:"path"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
	Content    string   `json:"content,omitempty"`
}

func toResult(e *tree.Entry, withContent bool) EntryResult {
	j := ui.ToEntryJSON(e, withContent)
	return EntryResult{
		Hash:       j.Hash,
		Abbrev:     j.Abbrev,
		Time:       j.Time.Format(ui.TimeFormat),
		Path:       j.Path,
		Tags:       j.Tags,
		Categories: j.Categories,
		Content:    j.Content,
	}
}
