// Package limit provides reader predicates that restrict which dated
// paths of a content directory are loaded at all.
package limit

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for dates and ranges that cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// pathDate matches the date components at the end of a content path,
// from a bare year down to a full entry time.
var pathDate = regexp.MustCompile(
	`(?:^|/)([0-9]{4})(?:/([0-9]{2})(?:/([0-9]{2})(?:/([0-2][0-9])-([0-9]{2})-([0-9]{2}))?)?)?$`)

// span is the period of time a path stands for.
type span struct {
	from, to time.Time
	depth    int // 1 year, 2 month, 3 day, 4 entry
	year     int
	month    int
	day      int
}

func spanOf(path string) (span, bool) {
	m := pathDate.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return span{}, false
	}

	var n [6]int
	depth := 0
	for i, s := range m[1:] {
		if s == "" {
			break
		}
		n[i], _ = strconv.Atoi(s)
		depth = i + 1
	}

	s := span{year: n[0], month: max(n[1], 1), day: max(n[2], 1)}
	s.from = time.Date(s.year, time.Month(s.month), s.day, n[3], n[4], n[5], 0, time.UTC)
	switch depth {
	case 1:
		s.depth, s.to = 1, s.from.AddDate(1, 0, 0)
	case 2:
		s.depth, s.to = 2, s.from.AddDate(0, 1, 0)
	case 3:
		s.depth, s.to = 3, s.from.AddDate(0, 0, 1)
	default:
		s.depth, s.to = 4, s.from.Add(time.Second)
	}
	return s, true
}

// Date is a calendar date given with one to three parts: a year, a year
// and month, or a full day. Missing parts are 1.
type Date struct {
	Year  int
	Month int
	Day   int
	Parts int
}

// ParseDate reads YYYY, YYYY-MM or YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) > 3 || parts[0] == "" {
		return Date{}, fmt.Errorf("%w: %q: expected YYYY, YYYY-MM or YYYY-MM-DD", ErrInvalidDate, s)
	}

	n := [3]int{0, 1, 1}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		n[i] = v
	}

	d := Date{Year: n[0], Month: n[1], Day: n[2], Parts: len(parts)}
	t := d.start()
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return Date{}, fmt.Errorf("%w: %q does not exist", ErrInvalidDate, s)
	}
	return d, nil
}

func (d Date) start() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// end returns the first instant after the unit the date names.
func (d Date) end() time.Time {
	switch d.Parts {
	case 1:
		return d.start().AddDate(1, 0, 0)
	case 2:
		return d.start().AddDate(0, 1, 0)
	default:
		return d.start().AddDate(0, 0, 1)
	}
}

func (d Date) String() string {
	switch d.Parts {
	case 1:
		return fmt.Sprintf("%04d", d.Year)
	case 2:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Between accepts paths whose period overlaps the range from the start
// of From to the end of To.
type Between struct {
	From Date
	To   Date
}

// ParseRange reads "<date>..<date>". A single date is a range over
// itself.
func ParseRange(s string) (Between, error) {
	first, last, found := strings.Cut(s, "..")
	if !found {
		last = first
	}
	from, err := ParseDate(first)
	if err != nil {
		return Between{}, err
	}
	to, err := ParseDate(last)
	if err != nil {
		return Between{}, err
	}
	if !to.end().After(from.start()) {
		return Between{}, fmt.Errorf("%w: range %q ends before it starts", ErrInvalidDate, s)
	}
	return Between{From: from, To: to}, nil
}

// SearchIn implements tree.ReaderPredicate.
func (b Between) SearchIn(path string) bool {
	s, ok := spanOf(path)
	if !ok {
		return false
	}
	return s.from.Before(b.To.end()) && s.to.After(b.From.start())
}

func (b Between) String() string { return b.From.String() + ".." + b.To.String() }

// In accepts paths that overlap the single year, month or day d.
func In(d Date) Between { return Between{From: d, To: d} }

// Year accepts paths in one year.
type Year int

// SearchIn implements tree.ReaderPredicate.
func (y Year) SearchIn(path string) bool {
	s, ok := spanOf(path)
	return ok && s.year == int(y)
}

// Month accepts paths in one month of any year. Year directories are
// always accepted so their months can be reached.
type Month int

// SearchIn implements tree.ReaderPredicate.
func (m Month) SearchIn(path string) bool {
	s, ok := spanOf(path)
	return ok && (s.depth < 2 || s.month == int(m))
}

// Day accepts paths on one day of any month.
type Day int

// SearchIn implements tree.ReaderPredicate.
func (d Day) SearchIn(path string) bool {
	s, ok := spanOf(path)
	return ok && (s.depth < 3 || s.day == int(d))
}

// ParseYear reads a year argument.
func ParseYear(s string) (Year, error) {
	v, err := parseIndex(s, 1, 9999)
	return Year(v), err
}

// ParseMonth reads a month number, 1 through 12.
func ParseMonth(s string) (Month, error) {
	v, err := parseIndex(s, 1, 12)
	return Month(v), err
}

// ParseDay reads a day of the month, 1 through 31.
func ParseDay(s string) (Day, error) {
	v, err := parseIndex(s, 1, 31)
	return Day(v), err
}

func parseIndex(s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %q is not between %d and %d", ErrInvalidDate, s, lo, hi)
	}
	return v, nil
}
