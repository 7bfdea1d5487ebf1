package report

import (
	"testing"
	"time"

	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/daterange"
	"github.com/expenso/expenso/pkg/expense"
	"github.com/expenso/expenso/pkg/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2023, 10, 18, 15, 4, 0, 0, time.UTC)

func reportExpense(id string, amount string, categoryName string, note string, date time.Time) expense.Expense {
	value, _ := decimal.NewFromString(amount)
	return expense.Expense{
		ID:        id,
		Amount:    value,
		Category:  categoryName,
		Note:      note,
		Date:      date,
		CreatedAt: date,
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	categories := category.DefaultCategories()

	t.Run("should only include expenses of the requested month", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			reportExpense("1", "12.50", "Food", "lunch", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
			reportExpense("2", "30.00", "Transport", "", time.Date(2023, 9, 30, 23, 59, 59, 0, time.UTC)),
			reportExpense("3", "7.50", "Food", "coffee", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),
		}

		// when
		report := BuildMonthlyReport(expenses, categories, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), reportNow)

		// then
		assert.Equal(t, 1, report.Count)
		assert.True(t, report.Total.Equal(decimal.RequireFromString("12.50")))
		require.Len(t, report.Rows, 1)
		assert.Equal(t, "lunch", report.Rows[0].Note)
	})

	t.Run("should total the month the same way the summary aggregation does", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			reportExpense("1", "12.50", "Food", "lunch", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
			reportExpense("2", "30.00", "Transport", "", time.Date(2023, 10, 9, 8, 0, 0, 0, time.UTC)),
			reportExpense("3", "7.50", "Food", "coffee", time.Date(2023, 10, 31, 22, 0, 0, 0, time.UTC)),
			reportExpense("4", "99.99", "Bills", "rent", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),
		}
		start, end := daterange.Month(reportNow)
		summary := stats.Summarize(expenses, start, end)

		// when
		report := BuildMonthlyReport(expenses, categories, reportNow, reportNow)

		// then
		assert.True(t, report.Total.Equal(summary.Total))
		assert.Equal(t, summary.Count, report.Count)
	})

	t.Run("should prefix the category with its icon when it resolves", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			reportExpense("1", "12.50", "Food", "", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
			reportExpense("2", "5.00", "Unknown", "", time.Date(2023, 10, 4, 12, 0, 0, 0, time.UTC)),
		}

		// when
		report := BuildMonthlyReport(expenses, categories, reportNow, reportNow)

		// then
		require.Len(t, report.Rows, 2)
		assert.Equal(t, "🍕 Food", report.Rows[0].Category)
		assert.Equal(t, "Unknown", report.Rows[1].Category)
	})

	t.Run("should compute breakdown percentages to one decimal place", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			reportExpense("1", "70.00", "Food", "", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
			reportExpense("2", "30.00", "Transport", "", time.Date(2023, 10, 4, 12, 0, 0, 0, time.UTC)),
		}

		// when
		report := BuildMonthlyReport(expenses, categories, reportNow, reportNow)

		// then
		require.Len(t, report.Breakdown, 2)
		assert.Equal(t, "Food", report.Breakdown[0].Name)
		assert.Equal(t, 1, report.Breakdown[0].Count)
		assert.True(t, report.Breakdown[0].Percentage.Equal(decimal.RequireFromString("70")))
		assert.True(t, report.Breakdown[1].Percentage.Equal(decimal.RequireFromString("30")))
	})

	t.Run("should report zero percentages when the month total is zero", func(t *testing.T) {
		// given
		expenses := []expense.Expense{
			reportExpense("1", "0.00", "Food", "", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
		}

		// when
		report := BuildMonthlyReport(expenses, categories, reportNow, reportNow)

		// then
		require.Len(t, report.Breakdown, 1)
		assert.True(t, report.Breakdown[0].Percentage.IsZero())
	})

	t.Run("should build an empty report for a month without expenses", func(t *testing.T) {
		// when
		report := BuildMonthlyReport([]expense.Expense{}, categories, reportNow, reportNow)

		// then
		assert.Equal(t, 0, report.Count)
		assert.True(t, report.Total.IsZero())
		assert.Empty(t, report.Rows)
		assert.Empty(t, report.Breakdown)
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ExpensO_October_2023.csv", Filename("ExpensO", reportNow))
	assert.Equal(t, "ExpensO_January_2024.csv", Filename("ExpensO", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}
