package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

const (
	headerDateFormat = "January 02, 2006 15:04"
	rowDateFormat    = "01/02/2006"
	rowStampFormat   = "01/02/2006 15:04"
)

// CSVReportRenderer renders a MonthlyReport into the textual CSV report:
// a plain header block, the expense rows, and a category-breakdown section.
type CSVReportRenderer struct {
	appName        string
	currencySymbol string
}

func NewCSVReportRenderer(appName string, currencySymbol string) *CSVReportRenderer {
	return &CSVReportRenderer{appName: appName, currencySymbol: currencySymbol}
}

func (r *CSVReportRenderer) Render(report MonthlyReport) (string, error) {
	var buffer bytes.Buffer

	// The header block is free text, not CSV fields, so it bypasses the
	// writer and its quoting.
	fmt.Fprintf(&buffer, "%s - %s Expense Report\n", r.appName, report.Month.Format("January 2006"))
	fmt.Fprintf(&buffer, "Generated on: %s\n", report.GeneratedAt.Format(headerDateFormat))
	fmt.Fprintf(&buffer, "Total Expenses: %d\n", report.Count)
	fmt.Fprintf(&buffer, "Total Amount: %s%s\n", r.currencySymbol, report.Total.StringFixed(2))
	buffer.WriteString("\n")

	writer := csv.NewWriter(&buffer)
	if err := writer.Write([]string{"Date", "Category", "Amount", "Note", "Timestamp"}); err != nil {
		return "", fmt.Errorf("could not write report header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.Date.Format(rowDateFormat),
			row.Category,
			r.currencySymbol + row.Amount.StringFixed(2),
			row.Note,
			row.CreatedAt.Format(rowStampFormat),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("could not write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("could not render report rows: %w", err)
	}

	buffer.WriteString("\n")
	buffer.WriteString("Category Breakdown:\n")

	writer = csv.NewWriter(&buffer)
	if err := writer.Write([]string{"Category", "Total Amount", "Count", "Percentage"}); err != nil {
		return "", fmt.Errorf("could not write breakdown header: %w", err)
	}
	for _, line := range report.Breakdown {
		record := []string{
			line.Name,
			r.currencySymbol + line.Total.StringFixed(2),
			fmt.Sprintf("%d", line.Count),
			line.Percentage.StringFixed(1) + "%",
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("could not write breakdown row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("could not render breakdown rows: %w", err)
	}

	return buffer.String(), nil
}
