package ui

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TheNeikos/diary/internal/meta"
	"github.com/TheNeikos/diary/internal/tree"
	"github.com/spf13/afero"
)

func sampleEntries() []*tree.Entry {
	return []*tree.Entry{
		tree.NewEntry("/c/2023/05/17/09-30-00", time.Date(2023, 5, 17, 9, 30, 0, 0, time.Local),
			[]byte("---\ntags: [sun]\n---\nMorning."), meta.Labels{}),
		tree.NewEntry("/c/2023/05/17/18-00-00", time.Date(2023, 5, 17, 18, 0, 0, 0, time.Local),
			[]byte("Evening."), meta.Labels{}),
	}
}

func TestFormatEntryList(t *testing.T) {
	var buf bytes.Buffer
	entries := sampleEntries()
	FormatEntryList(&buf, entries, presets["default-dark"])

	lines := strings.Split(strings.TrimSpace(stripANSI(buf.String())), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	want := "[" + entries[0].AbbrevHash() + "] 2023-05-17 09:30:00"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestFormatEntryListEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryList(&buf, nil, presets["default-dark"])
	if buf.String() != "No diary entries found.\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatCat(t *testing.T) {
	var buf bytes.Buffer
	FormatCat(&buf, sampleEntries(), presets["default-dark"], nil)

	out := stripANSI(buf.String())
	if !strings.HasPrefix(out, "--- 2023-05-17 09:30:00\n") {
		t.Errorf("missing header in %q", out)
	}
	if strings.Contains(out, "tags:") {
		t.Errorf("front matter should not be printed: %q", out)
	}
	if !strings.Contains(out, "--- 2023-05-17 18:00:00\nEvening.\n\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFormatCatRenders(t *testing.T) {
	var buf bytes.Buffer
	FormatCat(&buf, sampleEntries()[1:], presets["default-dark"], strings.ToUpper)
	if !strings.Contains(buf.String(), "EVENING.") {
		t.Errorf("render func not applied: %q", buf.String())
	}
}

func TestFormatRaw(t *testing.T) {
	var buf bytes.Buffer
	FormatRaw(&buf, sampleEntries())
	want := "---\ntags: [sun]\n---\nMorning.\nEvening.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatMessages(t *testing.T) {
	e := sampleEntries()[1]
	var buf bytes.Buffer
	FormatEntryCreated(&buf, e)
	FormatEntryUpdated(&buf, e)
	FormatNoChanges(&buf, e)
	FormatLabeled(&buf, "tag", "work", 1)
	FormatLabeled(&buf, "category", "travel", 3)

	want := "Created entry [" + e.AbbrevHash() + "] 2023-05-17 18:00:00\n" +
		"Updated entry [" + e.AbbrevHash() + "] 2023-05-17 18:00:00\n" +
		"No changes detected for entry [" + e.AbbrevHash() + "].\n" +
		"Added tag \"work\" to 1 entry.\n" +
		"Added category \"travel\" to 3 entries.\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}

func TestToTreeJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	for path, content := range map[string]string{
		"/c/2023/05/17/09-30-00": "hello",
		"/c/2023/05/.meta.yaml":  "tags: [spring]\n",
	} {
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tr, err := tree.NewBuilder(fs, nil).Build("/c")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToTreeJSON(tr, true)); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var got TreeJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.Years) != 1 || got.Years[0].Year != 2023 {
		t.Fatalf("years = %+v", got.Years)
	}
	month := got.Years[0].Months[0]
	if month.Name != "may" || len(month.Tags) != 1 || month.Tags[0] != "spring" {
		t.Errorf("month = %+v", month)
	}
	entry := month.Days[0].Entries[0]
	if entry.Content != "hello" || len(entry.Abbrev) != 7 || entry.Tags == nil {
		t.Errorf("entry = %+v", entry)
	}
}

func TestToTreeJSONEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/c", 0o755); err != nil {
		t.Fatal(err)
	}
	tr, err := tree.NewBuilder(fs, nil).Build("/c")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToTreeJSON(tr, false)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"years": []`) {
		t.Errorf("expected an empty years array, got %s", buf.String())
	}
}
