package meta

import (
	"errors"
	"slices"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadMissingSidecar(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Load(fs, "/content/2023")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Tags) != 0 || len(s.Categories) != 0 || len(s.Entries) != 0 {
		t.Errorf("expected empty sidecar, got %+v", s)
	}
}

func TestLoadSidecar(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
tags: [travel, travel, beach]
categories: [holidays]
entries:
  09-30-00:
    tags: [happy]
`
	if err := afero.WriteFile(fs, "/content/2023/05/17/.meta.yaml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(fs, "/content/2023/05/17")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(s.Tags, []string{"beach", "travel"}) {
		t.Errorf("tags = %v, want [beach travel]", s.Tags)
	}
	if !slices.Equal(s.Categories, []string{"holidays"}) {
		t.Errorf("categories = %v, want [holidays]", s.Categories)
	}
	if !slices.Equal(s.Entries["09-30-00"].Tags, []string{"happy"}) {
		t.Errorf("entry tags = %v, want [happy]", s.Entries["09-30-00"].Tags)
	}
}

func TestLoadMalformedSidecar(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/d/.meta.yaml", []byte("tags: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(fs, "/d")
	if !errors.Is(err, ErrMeta) {
		t.Errorf("expected ErrMeta, got %v", err)
	}
}

func TestAddEntryLabels(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/content/2023/05/17"

	if err := AddEntryLabels(fs, dir, "09-30-00", Labels{Tags: []string{"work"}}); err != nil {
		t.Fatalf("AddEntryLabels: %v", err)
	}
	if err := AddEntryLabels(fs, dir, "09-30-00", Labels{Tags: []string{"work", "late"}, Categories: []string{"job"}}); err != nil {
		t.Fatalf("AddEntryLabels: %v", err)
	}

	s, err := Load(fs, dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := s.Entries["09-30-00"]
	if !slices.Equal(got.Tags, []string{"late", "work"}) {
		t.Errorf("tags = %v, want [late work]", got.Tags)
	}
	if !slices.Equal(got.Categories, []string{"job"}) {
		t.Errorf("categories = %v, want [job]", got.Categories)
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].Name() != FileName {
		t.Errorf("expected only the sidecar in %s, found %d files", dir, len(infos))
	}
}

func TestMerge(t *testing.T) {
	got := Merge(Labels{Tags: []string{"b", ""}}, Labels{Tags: []string{"a", "b"}})
	if !slices.Equal(got.Tags, []string{"a", "b"}) {
		t.Errorf("tags = %v, want [a b]", got.Tags)
	}
	if got.Categories != nil {
		t.Errorf("categories = %v, want nil", got.Categories)
	}
}
