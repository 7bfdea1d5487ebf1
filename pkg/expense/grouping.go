package expense

import "github.com/expenso/expenso/pkg/daterange"

// DayGroup holds all expenses that occurred on one calendar day.
type DayGroup struct {
	// Day is the sortable "2006-01-02" key of the calendar day.
	Day      string
	Expenses []Expense
}

// GroupByDay partitions expenses into calendar-day buckets keyed by the Date
// field, independent of time of day. Groups appear in the order their day was
// first encountered and expenses keep their relative input order within a
// group; callers that need a display order must sort the input first (see
// ApplyFilter).
func GroupByDay(expenses []Expense) []DayGroup {
	index := make(map[string]int, len(expenses))
	groups := make([]DayGroup, 0)
	for _, e := range expenses {
		key := daterange.DayKey(e.Date)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Day: key})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
	}
	return groups
}
