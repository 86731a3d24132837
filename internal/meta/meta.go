// Package meta reads and writes the tag/category sidecar kept next to
// diary directories.
//
// A sidecar is a YAML file named .meta.yaml inside a year, month or day
// directory. It labels the directory itself and, for day directories,
// the entries it contains:
//
//	tags: [travel]
//	categories: [work]
//	entries:
//	  09-30-00:
//	    tags: [happy]
package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/TheNeikos/diary/internal/atomicfile"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the sidecar file name inside a directory.
const FileName = ".meta.yaml"

// ErrMeta wraps every sidecar read or write failure.
var ErrMeta = errors.New("metadata error")

// Labels is a set of tags and categories.
type Labels struct {
	Tags       []string `yaml:"tags,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// Sidecar is the content of a .meta.yaml file.
type Sidecar struct {
	Labels  `yaml:",inline"`
	Entries map[string]Labels `yaml:"entries,omitempty"`
}

// Path returns the sidecar location for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Merge returns the union of all label sets, sorted and without duplicates.
func Merge(sets ...Labels) Labels {
	var out Labels
	for _, s := range sets {
		out.Tags = append(out.Tags, s.Tags...)
		out.Categories = append(out.Categories, s.Categories...)
	}
	out.Tags = normalize(out.Tags)
	out.Categories = normalize(out.Categories)
	return out
}

func normalize(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Load reads the sidecar of dir. A missing sidecar is not an error.
func Load(fsys afero.Fs, dir string) (Sidecar, error) {
	data, err := afero.ReadFile(fsys, Path(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return Sidecar{}, nil
		}
		return Sidecar{}, fmt.Errorf("%w: reading %s: %v", ErrMeta, Path(dir), err)
	}

	var s Sidecar
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sidecar{}, fmt.Errorf("%w: parsing %s: %v", ErrMeta, Path(dir), err)
	}
	s.Labels = Merge(s.Labels)
	for name, l := range s.Entries {
		s.Entries[name] = Merge(l)
	}
	return s, nil
}

// Save writes the sidecar of dir, replacing any previous one.
func Save(fsys afero.Fs, dir string, s Sidecar) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrMeta, Path(dir), err)
	}
	if err := atomicfile.WriteFile(fsys, Path(dir), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrMeta, err)
	}
	return nil
}

// AddEntryLabels adds labels to the entry called name in the day directory dir.
func AddEntryLabels(fsys afero.Fs, dir, name string, add Labels) error {
	s, err := Load(fsys, dir)
	if err != nil {
		return err
	}
	if s.Entries == nil {
		s.Entries = make(map[string]Labels)
	}
	s.Entries[name] = Merge(s.Entries[name], add)
	return Save(fsys, dir, s)
}
