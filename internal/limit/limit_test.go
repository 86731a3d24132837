package limit

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/TheNeikos/diary/internal/tree"
	"github.com/spf13/afero"
)

var (
	_ tree.ReaderPredicate = Between{}
	_ tree.ReaderPredicate = Year(0)
	_ tree.ReaderPredicate = Month(0)
	_ tree.ReaderPredicate = Day(0)
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2013", Date{2013, 1, 1, 1}},
		{"2013-02", Date{2013, 2, 1, 2}},
		{"2013-02-28", Date{2013, 2, 28, 3}},
		{"2024-02-29", Date{2024, 2, 29, 3}},
		{" 2013-7 ", Date{2013, 7, 1, 2}},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "2013-13", "2013-02-30", "2023-02-29", "2013-01-01-01", "2013--01", "0-1-1"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestParseRange(t *testing.T) {
	b, err := ParseRange("2013-01..2013-02")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if b.String() != "2013-01..2013-02" {
		t.Errorf("String = %q", b.String())
	}

	single, err := ParseRange("2013")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if single != In(Date{2013, 1, 1, 1}) {
		t.Errorf("single date range = %+v", single)
	}

	for _, in := range []string{"2014..2013", "2013..nope", "..2013"} {
		if _, err := ParseRange(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseRange(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestBetween(t *testing.T) {
	b, err := ParseRange("2013-01..2013-02")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/c/2013", true},
		{"/c/2012", false},
		{"/c/2014", false},
		{"/c/2013/01", true},
		{"/c/2013/02", true},
		{"/c/2013/03", false},
		{"/c/2013/02/28", true},
		{"/c/2013/02/28/23-59-59", true},
		{"/c/2013/03/01/00-00-00", false},
		{"/c/2012/12/31/23-59-59", false},
		{"/c/notes", false},
		{"/c/2013/02/28/draft", false},
	}
	for _, tt := range tests {
		if got := b.SearchIn(tt.path); got != tt.want {
			t.Errorf("Between.SearchIn(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIn(t *testing.T) {
	d, err := ParseDate("2023-05-17")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	in := In(d)

	for path, want := range map[string]bool{
		"/c/2023":                true,
		"/c/2023/05":             true,
		"/c/2023/05/17":          true,
		"/c/2023/05/17/09-30-00": true,
		"/c/2023/05/18":          false,
		"/c/2023/06":             false,
		"/c/2022":                false,
	} {
		if got := in.SearchIn(path); got != want {
			t.Errorf("In.SearchIn(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestYearMonthDay(t *testing.T) {
	tests := []struct {
		name string
		p    tree.ReaderPredicate
		path string
		want bool
	}{
		{"year match", Year(2023), "/c/2023", true},
		{"year deep", Year(2023), "/c/2023/05/17/09-30-00", true},
		{"year other", Year(2023), "/c/2022/05", false},
		{"month at year", Month(5), "/c/2022", true},
		{"month match", Month(5), "/c/2022/05", true},
		{"month other", Month(5), "/c/2022/06/01", false},
		{"day at year", Day(17), "/c/2022", true},
		{"day at month", Day(17), "/c/2022/06", true},
		{"day match", Day(17), "/c/2022/06/17/10-00-00", true},
		{"day other", Day(17), "/c/2022/06/18", false},
		{"no date", Year(2023), "/c/README", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.SearchIn(tt.path); got != tt.want {
				t.Errorf("SearchIn(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseIndexes(t *testing.T) {
	if m, err := ParseMonth("05"); err != nil || m != 5 {
		t.Errorf("ParseMonth(05) = %v, %v", m, err)
	}
	if _, err := ParseMonth("13"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseMonth(13): expected ErrInvalidDate, got %v", err)
	}
	if d, err := ParseDay("31"); err != nil || d != 31 {
		t.Errorf("ParseDay(31) = %v, %v", d, err)
	}
	if _, err := ParseDay("0"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDay(0): expected ErrInvalidDate, got %v", err)
	}
	if y, err := ParseYear("2023"); err != nil || y != 2023 {
		t.Errorf("ParseYear(2023) = %v, %v", y, err)
	}
	if _, err := ParseYear("twenty"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseYear(twenty): expected ErrInvalidDate, got %v", err)
	}
}

func TestLimitsDriveBuilder(t *testing.T) {
	fs := newContent(t,
		"2022/05/17/08-00-00",
		"2023/05/17/09-30-00",
		"2023/05/18/10-00-00",
		"2023/06/17/11-00-00",
	)

	tr, err := tree.NewBuilder(fs, nil, Month(5), Day(17)).Build("/c")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Either predicate is enough to load a path.
	if got := len(tr.Entries()); got != 4 {
		t.Errorf("expected 4 entries, got %d", got)
	}

	tr, err = tree.NewBuilder(fs, nil, Year(2023)).Build("/c")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := len(tr.Entries()); got != 3 {
		t.Errorf("expected 3 entries in 2023, got %d", got)
	}
}

func newContent(t *testing.T, entries ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, e := range entries {
		if err := fs.MkdirAll(filepath.Dir("/c/"+e), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", e, err)
		}
		if err := afero.WriteFile(fs, "/c/"+e, []byte(e), 0o644); err != nil {
			t.Fatalf("writing %s: %v", e, err)
		}
	}
	return fs
}
