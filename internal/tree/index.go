package tree

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// entryTimeLayout is the layout of the date-time token embedded in an
// entry path.
const entryTimeLayout = "2006/01/02/15-04-05"

var (
	entryTimePattern = regexp.MustCompile(`[0-9]{4}/[0-9]{2}/[0-9]{2}/[0-2][0-9]-[0-9]{2}-[0-9]{2}`)

	yearName  = regexp.MustCompile(`^[0-9]{4}$`)
	indexName = regexp.MustCompile(`^[0-9]{2}$`)
	entryName = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{2}$`)
)

// IndexFromPath returns the integer formed by the last width digits of
// path, or 0 when path does not end in width digits.
func IndexFromPath(path string, width int) int {
	if width <= 0 || len(path) < width {
		return 0
	}
	tail := path[len(path)-width:]
	for i := 0; i < len(tail); i++ {
		if tail[i] < '0' || tail[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0
	}
	return n
}

// TimeFromPath parses the YYYY/MM/DD/HH-MM-SS token found in path, in
// the local time zone. The last token wins when there are several.
func TimeFromPath(path string) (time.Time, error) {
	tokens := entryTimePattern.FindAllString(filepath.ToSlash(path), -1)
	if len(tokens) == 0 {
		return time.Time{}, fmt.Errorf("%w: no date-time in %s", ErrMalformedPath, path)
	}
	token := tokens[len(tokens)-1]
	t, err := time.ParseInLocation(entryTimeLayout, token, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMalformedPath, path, err)
	}
	return t, nil
}

// EntryPath returns where an entry written at t lives under root.
func EntryPath(root string, t time.Time) string {
	return filepath.Join(root, t.Format("2006"), t.Format("01"), t.Format("02"), t.Format("15-04-05"))
}

func padIndex(index, width int) string {
	s := strconv.Itoa(index)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// validYear reports whether name is a year directory name.
func validYear(name string) bool {
	return yearName.MatchString(name) && IndexFromPath(name, 4) > 0
}

func validMonth(name string) bool {
	if !indexName.MatchString(name) {
		return false
	}
	m := IndexFromPath(name, 2)
	return m >= 1 && m <= 12
}

func validDay(name string) bool {
	if !indexName.MatchString(name) {
		return false
	}
	d := IndexFromPath(name, 2)
	return d >= 1 && d <= 31
}

func validEntry(name string) bool {
	return entryName.MatchString(name)
}
