package dashboard

import (
	"maps"

	"github.com/samber/lo"
)

// Filters holds committed search terms keyed by column data index.
type Filters map[string]string

// Clone returns an independent copy.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	maps.Copy(out, f)
	return out
}

// Merge returns f overlaid with overrides. An empty override clears the column.
func (f Filters) Merge(overrides Filters) Filters {
	out := f.Clone()
	for col, term := range overrides {
		if term == "" {
			delete(out, col)
			continue
		}
		out[col] = term
	}
	return out
}

// Active reports whether any column carries a term.
func (f Filters) Active() bool {
	return lo.SomeBy(lo.Values(f), func(term string) bool { return term != "" })
}

// Apply keeps the rows matching every active term.
func (f Filters) Apply(rows []Row) []Row {
	if !f.Active() {
		return rows
	}
	return lo.Filter(rows, func(r Row, _ int) bool {
		for col, term := range f {
			if term == "" {
				continue
			}
			v, ok := r.Field(col)
			if !ok || !Match(v, term) {
				return false
			}
		}
		return true
	})
}
