package tree

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestLatest(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/2022/12/31/23-59-59", "old")
	writeFile(t, fs, "/content/2023/05/17/09-30-00", "morning")
	writeFile(t, fs, "/content/2023/05/17/18-00-00", "evening")
	writeFile(t, fs, "/content/2023/05/09/20-00-00", "earlier")

	e, err := Latest(fs, "/content")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if e.Path() != "/content/2023/05/17/18-00-00" {
		t.Errorf("latest = %s", e.Path())
	}
	if e.Content() != "evening" {
		t.Errorf("content = %q", e.Content())
	}
}

func TestLatestBacksOffEmptyBranches(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/2023/04/30/08-00-00", "found")
	mkdir(t, fs, "/content/2023/05/17")
	mkdir(t, fs, "/content/2024")
	writeFile(t, fs, "/content/2023/04/30/notes", "stray")
	writeFile(t, fs, "/content/9999-draft", "stray")

	e, err := Latest(fs, "/content")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if e.Path() != "/content/2023/04/30/08-00-00" {
		t.Errorf("latest = %s", e.Path())
	}
}

func TestLatestEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkdir(t, fs, "/content/2023/05")

	_, err := Latest(fs, "/content")
	if !errors.Is(err, ErrNoEntries) {
		t.Errorf("expected ErrNoEntries, got %v", err)
	}
}

func TestLatestMissingRoot(t *testing.T) {
	_, err := Latest(afero.NewMemMapFs(), "/nowhere")
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("expected ErrPathNotFound, got %v", err)
	}
}
