package tree

import "slices"

// StructuralFilter decides after loading whether a node is kept.
type StructuralFilter interface {
	Matches(node Node) bool
}

// Prune removes from t every node that neither matches a filter itself
// nor sits below or above a node that does. Filters are applied one
// after another, so a node must survive all of them. The root is never
// removed.
func Prune(t *Tree, filters ...StructuralFilter) {
	for _, f := range filters {
		k := collectKept(t, f)
		k.keepEntries(t)
		k.keepDays(t)
		k.keepMonths(t)
		k.keepYears(t)
	}
}

// kept holds the nodes a filter matched directly. A level is only
// checked below parents that were not matched themselves: a matched
// parent keeps its whole subtree.
type kept struct {
	years   map[*Year]bool
	months  map[*Month]bool
	days    map[*Day]bool
	entries map[*Entry]bool
}

func collectKept(t *Tree, f StructuralFilter) kept {
	k := kept{
		years:   make(map[*Year]bool),
		months:  make(map[*Month]bool),
		days:    make(map[*Day]bool),
		entries: make(map[*Entry]bool),
	}

	for _, y := range t.Years {
		if f.Matches(y) {
			k.years[y] = true
		}
	}
	for _, y := range t.Years {
		if k.years[y] {
			continue
		}
		for _, m := range y.Months {
			if f.Matches(m) {
				k.months[m] = true
			}
		}
	}
	for _, y := range t.Years {
		if k.years[y] {
			continue
		}
		for _, m := range y.Months {
			if k.months[m] {
				continue
			}
			for _, d := range m.Days {
				if f.Matches(d) {
					k.days[d] = true
				}
			}
		}
	}
	for _, y := range t.Years {
		if k.years[y] {
			continue
		}
		for _, m := range y.Months {
			if k.months[m] {
				continue
			}
			for _, d := range m.Days {
				if k.days[d] {
					continue
				}
				for _, e := range d.Entries {
					if f.Matches(e) {
						k.entries[e] = true
					}
				}
			}
		}
	}
	return k
}

// The keep steps run leaf to root. Each step only looks at children the
// previous step left in place, so an entry kept on its own keeps its day,
// and a removed day is never brought back.

func (k kept) keepEntries(t *Tree) {
	for _, y := range t.Years {
		for _, m := range y.Months {
			for _, d := range m.Days {
				if k.years[y] || k.months[m] || k.days[d] {
					continue
				}
				d.Entries = slices.DeleteFunc(d.Entries, func(e *Entry) bool {
					return !k.entries[e]
				})
			}
		}
	}
}

func (k kept) keepDays(t *Tree) {
	for _, y := range t.Years {
		for _, m := range y.Months {
			if k.years[y] || k.months[m] {
				continue
			}
			m.Days = slices.DeleteFunc(m.Days, func(d *Day) bool {
				return !k.days[d] && len(d.Entries) == 0
			})
		}
	}
}

func (k kept) keepMonths(t *Tree) {
	for _, y := range t.Years {
		if k.years[y] {
			continue
		}
		y.Months = slices.DeleteFunc(y.Months, func(m *Month) bool {
			return !k.months[m] && len(m.Days) == 0
		})
	}
}

func (k kept) keepYears(t *Tree) {
	t.Years = slices.DeleteFunc(t.Years, func(y *Year) bool {
		return !k.years[y] && len(y.Months) == 0
	})
}
