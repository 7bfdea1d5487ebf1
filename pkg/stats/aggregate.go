package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/daterange"
	"github.com/expenso/expenso/pkg/expense"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Summarize filters expenses whose date falls within [start, end] and returns
// their total amount and count. An empty selection yields a zero summary.
func Summarize(expenses []expense.Expense, start, end time.Time) Summary {
	summary := Summary{Total: decimal.Zero}
	for _, e := range expenses {
		if daterange.Contains(e.Date, start, end) {
			summary.Total = summary.Total.Add(e.Amount)
			summary.Count++
		}
	}
	return summary
}

// Summaries computes the today / this week / this month summary triple
// against a single reference instant.
func Summaries(expenses []expense.Expense, now time.Time, weekStart time.Weekday) SummarySet {
	todayStart, todayEnd := daterange.Today(now)
	weekStartTime, weekEnd := daterange.Week(now, weekStart)
	monthStart, monthEnd := daterange.Month(now)
	return SummarySet{
		Today:     Summarize(expenses, todayStart, todayEnd),
		ThisWeek:  Summarize(expenses, weekStartTime, weekEnd),
		ThisMonth: Summarize(expenses, monthStart, monthEnd),
	}
}

// Breakdown aggregates the in-range expenses per category name and computes
// each name's share of the grand total, rounded to two decimal places. When
// the grand total is zero every percentage is exactly zero. Names without a
// matching category keep a fixed fallback icon and color. The result is
// sorted by total descending; ties keep first-encounter order.
func Breakdown(expenses []expense.Expense, categories []category.Category, start, end time.Time) []CategoryBreakdown {
	totals := map[string]decimal.Decimal{}
	var names []string
	grandTotal := decimal.Zero

	for _, e := range expenses {
		if !daterange.Contains(e.Date, start, end) {
			continue
		}
		if _, seen := totals[e.Category]; !seen {
			names = append(names, e.Category)
			totals[e.Category] = decimal.Zero
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		grandTotal = grandTotal.Add(e.Amount)
	}

	breakdown := make([]CategoryBreakdown, 0, len(names))
	for _, name := range names {
		total := totals[name]
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = total.Mul(oneHundred).Div(grandTotal).Round(2)
		}
		icon, color := category.FallbackIcon, category.FallbackColor
		if c, ok := category.Resolve(categories, name); ok {
			icon, color = c.Icon, c.Color
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:   name,
			Total:      total,
			Percentage: percentage,
			Icon:       icon,
			Color:      color,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[j].Total.LessThan(breakdown[i].Total)
	})

	return breakdown
}

// ChartSeries projects a breakdown into chart points. Labels within the
// returned series are guaranteed unique: a repeated name gets its occurrence
// index appended, so series never collide in rendering.
func ChartSeries(expenses []expense.Expense, categories []category.Category, start, end time.Time) []ChartPoint {
	breakdown := Breakdown(expenses, categories, start, end)
	points := make([]ChartPoint, 0, len(breakdown))
	for _, item := range breakdown {
		points = append(points, ChartPoint{
			Label:  item.Category,
			Name:   item.Category,
			Amount: item.Total,
			Color:  item.Color,
		})
	}
	return uniqueLabels(points)
}

// uniqueLabels rewrites duplicate labels deterministically: the first
// occurrence keeps the bare name, the n-th repeat becomes "name-n".
func uniqueLabels(points []ChartPoint) []ChartPoint {
	occurrences := make(map[string]int, len(points))
	for i, p := range points {
		n := occurrences[p.Name]
		occurrences[p.Name] = n + 1
		if n > 0 {
			points[i].Label = fmt.Sprintf("%s-%d", p.Name, n)
		}
	}
	return points
}
