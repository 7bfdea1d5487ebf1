package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/expenso/expenso/internal/utils"
	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	expenseReader  = &stubExpenseReader{}
	categoryReader = &stubCategoryReader{}
	exporter       = &stubExporter{}
	reportClock    = &utils.MockClock{FixedNow: reportNow}
)

func setup(t *testing.T) (ReportService, func()) {
	service := NewReportService(expenseReader, categoryReader, NewCSVReportRenderer("ExpensO", "$"), exporter, reportClock, "ExpensO")
	return service, func() {
		expenseReader.expenses = nil
		expenseReader.err = nil
		categoryReader.categories = nil
		categoryReader.err = nil
		exporter.reset()
	}
}

func TestReportServiceImpl_RenderMonthly(t *testing.T) {
	t.Run("should render the current month's expenses", func(t *testing.T) {
		// given
		service, teardown := setup(t)
		defer teardown()
		expenseReader.expenses = []expense.Expense{
			reportExpense("1", "12.50", "Food", "lunch", time.Date(2023, 10, 3, 12, 0, 0, 0, time.UTC)),
		}
		categoryReader.categories = category.DefaultCategories()

		// when
		content, err := service.RenderMonthly(context.Background(), reportNow)

		// then
		require.NoError(t, err)
		assert.Contains(t, content, "ExpensO - October 2023 Expense Report")
		assert.Contains(t, content, "Total Expenses: 1")
		assert.Contains(t, content, "🍕 Food")
	})

	t.Run("should fail when expenses cannot be read", func(t *testing.T) {
		// given
		service, teardown := setup(t)
		defer teardown()
		expenseReader.err = errors.New("storage unavailable")

		// when
		_, err := service.RenderMonthly(context.Background(), reportNow)

		// then
		assert.Error(t, err)
	})
}

func TestReportServiceImpl_ExportMonthly(t *testing.T) {
	t.Run("should export under the month's filename", func(t *testing.T) {
		// given
		service, teardown := setup(t)
		defer teardown()
		categoryReader.categories = category.DefaultCategories()

		// when
		path, err := service.ExportMonthly(context.Background(), reportNow)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/exports/ExpensO_October_2023.csv", path)
		assert.Equal(t, "ExpensO_October_2023.csv", exporter.filename)
		assert.Contains(t, exporter.content, "Total Expenses: 0")
	})

	t.Run("should surface exporter failures as export errors", func(t *testing.T) {
		// given
		service, teardown := setup(t)
		defer teardown()
		categoryReader.categories = category.DefaultCategories()
		exporter.fail = true

		// when
		_, err := service.ExportMonthly(context.Background(), reportNow)

		// then
		var exportErr *ExportError
		require.ErrorAs(t, err, &exportErr)
		assert.Equal(t, "ExpensO_October_2023.csv", exportErr.Filename)
	})
}

func TestFileExporter_Export(t *testing.T) {
	t.Run("should write the report into the export directory", func(t *testing.T) {
		// given
		dir := filepath.Join(t.TempDir(), "exports")
		fileExporter := NewFileExporter(dir)

		// when
		path, err := fileExporter.Export(context.Background(), "ExpensO_October_2023.csv", "report body")

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ExpensO_October_2023.csv"), path)
		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "report body", string(written))
	})
}
