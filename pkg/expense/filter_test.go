package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testExpense(id string, amount float64, category string, note string, date time.Time) Expense {
	return Expense{
		ID:        id,
		Amount:    decimal.NewFromFloat(amount),
		Category:  category,
		Note:      note,
		Date:      date,
		CreatedAt: date,
	}
}

func testExpenses() []Expense {
	base := time.Date(2023, 10, 10, 12, 0, 0, 0, time.UTC)
	return []Expense{
		testExpense("1", 12.50, "Food", "Lunch at Subway", base),
		testExpense("2", 40.00, "Transport", "Monthly bus pass", base.AddDate(0, 0, 1)),
		testExpense("3", 7.20, "Food", "Dinner", base.AddDate(0, 0, 2)),
		testExpense("4", 99.99, "Shopping", "", base.AddDate(0, 0, 3)),
	}
}

func TestApplyFilter_Category(t *testing.T) {
	t.Run("should retain only exact category matches", func(t *testing.T) {
		// given
		expenses := testExpenses()

		// when
		result := ApplyFilter(expenses, Filter{Category: "Food", SortBy: SortByDate, Order: SortAsc})

		// then
		assert.Len(t, result, 2)
		for _, e := range result {
			assert.Equal(t, "Food", e.Category)
		}
	})

	t.Run("should be case-sensitive on category", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{Category: "food", SortBy: SortByDate, Order: SortAsc})
		assert.Empty(t, result)
	})
}

func TestApplyFilter_Search(t *testing.T) {
	t.Run("should match note as case-insensitive substring", func(t *testing.T) {
		// given
		expenses := []Expense{
			testExpense("1", 10, "Food", "Lunch at Subway", time.Now()),
			testExpense("2", 20, "Food", "Dinner", time.Now()),
		}

		// when
		result := ApplyFilter(expenses, Filter{SearchQuery: "lunch", SortBy: SortByDate, Order: SortAsc})

		// then
		assert.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("should match category as well as note", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{SearchQuery: "transp", SortBy: SortByDate, Order: SortAsc})
		assert.Len(t, result, 1)
		assert.Equal(t, "Transport", result[0].Category)
	})

	t.Run("should not match an expense without note or category hit", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{SearchQuery: "groceries", SortBy: SortByDate, Order: SortAsc})
		assert.Empty(t, result)
	})
}

func TestApplyFilter_Sort(t *testing.T) {
	t.Run("should sort by amount ascending", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{SortBy: SortByAmount, Order: SortAsc})

		assert.Equal(t, []string{"3", "1", "2", "4"}, ids(result))
	})

	t.Run("should sort by date descending", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{SortBy: SortByDate, Order: SortDesc})

		assert.Equal(t, []string{"4", "3", "2", "1"}, ids(result))
	})

	t.Run("descending should be the reverse of ascending when keys are distinct", func(t *testing.T) {
		// given
		expenses := testExpenses()

		// when
		asc := ApplyFilter(expenses, Filter{SortBy: SortByAmount, Order: SortAsc})
		desc := ApplyFilter(expenses, Filter{SortBy: SortByAmount, Order: SortDesc})

		// then
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("should preserve insertion order among equal keys", func(t *testing.T) {
		// given
		date := time.Date(2023, 10, 10, 12, 0, 0, 0, time.UTC)
		expenses := []Expense{
			testExpense("a", 10, "Food", "", date),
			testExpense("b", 10, "Food", "", date),
			testExpense("c", 10, "Food", "", date),
		}

		// when
		result := ApplyFilter(expenses, Filter{SortBy: SortByAmount, Order: SortDesc})

		// then
		assert.Equal(t, []string{"a", "b", "c"}, ids(result))
	})
}

func TestApplyFilter_Idempotence(t *testing.T) {
	t.Run("no-op filter applied twice should equal applying it once", func(t *testing.T) {
		// given
		options := Filter{SortBy: SortByDate, Order: SortDesc}
		expenses := testExpenses()

		// when
		once := ApplyFilter(expenses, options)
		twice := ApplyFilter(once, options)

		// then
		assert.Equal(t, once, twice)
	})
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	// given
	expenses := testExpenses()
	original := ids(expenses)

	// when
	ApplyFilter(expenses, Filter{SortBy: SortByAmount, Order: SortDesc})

	// then
	assert.Equal(t, original, ids(expenses))
}

func TestApplyFilter_UnknownSortField(t *testing.T) {
	t.Run("should fall back to sorting by date", func(t *testing.T) {
		result := ApplyFilter(testExpenses(), Filter{SortBy: "magnitude", Order: SortAsc})
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(result))
	})
}

func ids(expenses []Expense) []string {
	result := make([]string, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, e.ID)
	}
	return result
}
