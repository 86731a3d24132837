package tree

import (
	"strings"
	"time"
)

// Day holds the entries of one calendar day.
type Day struct {
	labels
	path    string
	index   int
	Entries []*Entry
}

func (d *Day) Path() string { return d.path }

// Index returns the day of the month.
func (d *Day) Index() int { return d.index }

func (d *Day) IndexString(width int) string { return padIndex(d.index, width) }

// Month holds the days of one month.
type Month struct {
	labels
	path  string
	index int
	Days  []*Day
}

func (m *Month) Path() string { return m.path }

// Index returns the month number, 1 for January.
func (m *Month) Index() int { return m.index }

func (m *Month) IndexString(width int) string { return padIndex(m.index, width) }

// Name returns the lower-cased English month name.
func (m *Month) Name() string {
	return strings.ToLower(time.Month(m.index).String())
}

// Year holds the months of one year.
type Year struct {
	labels
	path   string
	year   int
	Months []*Month
}

func (y *Year) Path() string { return y.path }

// Year returns the calendar year.
func (y *Year) Year() int { return y.year }

func (y *Year) IndexString(width int) string { return padIndex(y.year, width) }
