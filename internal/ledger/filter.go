package ledger

import (
	"sort"

	"github.com/theirongolddev/fintrack/internal/model"
)

// FilterSpec holds the field-equality constraints of a query. Zero values
// mean "no constraint on this field" — an unset field never matches
// against the empty value.
type FilterSpec struct {
	Category string
	Kind     model.Kind
}

// Order names the two result orderings. These are deliberately distinct:
// list-style browsing shows the most recent transaction first, while
// export preserves the store's order so files round-trip predictably.
// Do not unify them.
type Order int

const (
	// BrowseOrder sorts by date descending (stable).
	BrowseOrder Order = iota
	// ExportOrder keeps the filter-time input order.
	ExportOrder
)

// Filter returns the transactions matching every constraint in spec AND
// the date filter, ordered per the requested policy. An empty spec with
// an unset date filter is the identity filter. An empty result is not an
// error.
func Filter(transactions []model.Transaction, spec FilterSpec, dates DateFilter, order Order) []model.Transaction {
	matched := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if spec.Category != "" && tx.Category != spec.Category {
			continue
		}
		if spec.Kind != "" && tx.Kind != spec.Kind {
			continue
		}
		if !dates.Matches(tx.Date) {
			continue
		}
		matched = append(matched, tx)
	}

	if order == BrowseOrder {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Date.After(matched[j].Date)
		})
	}
	return matched
}
