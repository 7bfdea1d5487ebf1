package stats

import (
	"github.com/shopspring/decimal"
)

// Summary holds the aggregated amount and record count within a date range.
type Summary struct {
	Total decimal.Decimal
	Count int
}

// SummarySet is the fixed triple shown on the home screen, all computed
// against the same reference instant.
type SummarySet struct {
	Today     Summary
	ThisWeek  Summary
	ThisMonth Summary
}

// CategoryBreakdown is the aggregated share of one category name within a
// date range. The name is the grouping key and may be a dangling reference;
// Icon and Color then carry the fallback values.
type CategoryBreakdown struct {
	Category   string
	Total      decimal.Decimal
	Percentage decimal.Decimal
	Icon       string
	Color      string
}

// ChartPoint is a chart-library-agnostic datum. Label is unique within one
// returned series; Name is the bare category name.
type ChartPoint struct {
	Label  string
	Name   string
	Amount decimal.Decimal
	Color  string
}
