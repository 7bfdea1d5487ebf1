package report

import (
	"time"

	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/daterange"
	"github.com/expenso/expenso/pkg/expense"
	"github.com/shopspring/decimal"
)

// MonthlyReport is the derived content of one calendar month's expense
// report, ready to be rendered into a text artifact.
type MonthlyReport struct {
	Month       time.Time
	GeneratedAt time.Time
	Total       decimal.Decimal
	Count       int
	Rows        []Row
	Breakdown   []CategoryLine
}

// Row is one expense line of the report.
type Row struct {
	Date time.Time
	// Category is the display form of the category: icon-prefixed when the
	// name resolves, the bare name otherwise.
	Category  string
	Amount    decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// CategoryLine is one entry of the trailing category-breakdown section.
type CategoryLine struct {
	Name  string
	Total decimal.Decimal
	Count int
	// Percentage of the month's grand total, rounded to one decimal place.
	// Exactly zero when the grand total is zero.
	Percentage decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// BuildMonthlyReport restricts expenses to month's calendar days and derives
// the report content. The function is pure; now only stamps GeneratedAt.
func BuildMonthlyReport(expenses []expense.Expense, categories []category.Category, month time.Time, now time.Time) MonthlyReport {
	start, end := daterange.Month(month)

	report := MonthlyReport{
		Month:       start,
		GeneratedAt: now,
		Total:       decimal.Zero,
	}

	lineIndex := map[string]int{}
	for _, e := range expenses {
		if !daterange.Contains(e.Date, start, end) {
			continue
		}

		displayCategory := e.Category
		if c, ok := category.Resolve(categories, e.Category); ok && c.Icon != "" {
			displayCategory = c.Icon + " " + e.Category
		}
		report.Rows = append(report.Rows, Row{
			Date:      e.Date,
			Category:  displayCategory,
			Amount:    e.Amount,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})

		i, ok := lineIndex[e.Category]
		if !ok {
			i = len(report.Breakdown)
			lineIndex[e.Category] = i
			report.Breakdown = append(report.Breakdown, CategoryLine{Name: e.Category, Total: decimal.Zero})
		}
		report.Breakdown[i].Total = report.Breakdown[i].Total.Add(e.Amount)
		report.Breakdown[i].Count++

		report.Total = report.Total.Add(e.Amount)
		report.Count++
	}

	for i := range report.Breakdown {
		if report.Total.IsPositive() {
			report.Breakdown[i].Percentage = report.Breakdown[i].Total.Mul(oneHundred).Div(report.Total).Round(1)
		} else {
			report.Breakdown[i].Percentage = decimal.Zero
		}
	}

	return report
}

// Filename builds the suggested export filename, e.g. "ExpensO_October_2023.csv".
func Filename(appName string, month time.Time) string {
	return appName + "_" + month.Month().String() + "_" + month.Format("2006") + ".csv"
}
