package expense

import (
	"sort"
	"strings"
)

// ApplyFilter produces the filtered and sorted view of expenses described by
// f. The input slice is never mutated; the result is a fresh slice. The sort
// is stable, so repeated calls with unchanged input yield identical output.
func ApplyFilter(expenses []Expense, f Filter) []Expense {
	filtered := make([]Expense, 0, len(expenses))
	query := strings.ToLower(f.SearchQuery)
	for _, e := range expenses {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortBy := f.SortBy
	if sortBy != SortByDate && sortBy != SortByAmount {
		sortBy = SortByDate
	}
	ascending := f.Order == SortAsc

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if !ascending {
			a, b = b, a
		}
		if sortBy == SortByAmount {
			return a.Amount.LessThan(b.Amount)
		}
		return a.Date.Before(b.Date)
	})

	return filtered
}

func matchesQuery(e Expense, lowerQuery string) bool {
	if e.Note != "" && strings.Contains(strings.ToLower(e.Note), lowerQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(e.Category), lowerQuery)
}
