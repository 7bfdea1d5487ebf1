package report

import (
	"context"
	"fmt"
	"time"

	"github.com/expenso/expenso/internal/utils"
	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/expense"
	log "github.com/sirupsen/logrus"
)

type ExpenseReader interface {
	GetAll(ctx context.Context) ([]expense.Expense, error)
}

type CategoryReader interface {
	GetAll(ctx context.Context) ([]category.Category, error)
}

type ReportService interface {
	// BuildMonthly derives the report content for the calendar month
	// containing month.
	BuildMonthly(ctx context.Context, month time.Time) (MonthlyReport, error)
	// RenderMonthly returns the report as CSV text.
	RenderMonthly(ctx context.Context, month time.Time) (string, error)
	// ExportMonthly renders the report and writes it through the exporter,
	// returning the locator of the written artifact.
	ExportMonthly(ctx context.Context, month time.Time) (string, error)
	// MonthlyFilename is the suggested filename for the month's report.
	MonthlyFilename(month time.Time) string
}

type ReportServiceImpl struct {
	expenses   ExpenseReader
	categories CategoryReader
	renderer   *CSVReportRenderer
	exporter   Exporter
	clock      utils.Clock
	appName    string
}

func NewReportService(
	expenses ExpenseReader,
	categories CategoryReader,
	renderer *CSVReportRenderer,
	exporter Exporter,
	clock utils.Clock,
	appName string,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		expenses:   expenses,
		categories: categories,
		renderer:   renderer,
		exporter:   exporter,
		clock:      clock,
		appName:    appName,
	}
}

func (s *ReportServiceImpl) BuildMonthly(ctx context.Context, month time.Time) (MonthlyReport, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		log.Error(err)
		return MonthlyReport{}, fmt.Errorf("could not load expenses for report: %w", err)
	}
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		log.Error(err)
		return MonthlyReport{}, fmt.Errorf("could not load categories for report: %w", err)
	}
	return BuildMonthlyReport(expenses, categories, month, s.clock.Now()), nil
}

func (s *ReportServiceImpl) RenderMonthly(ctx context.Context, month time.Time) (string, error) {
	report, err := s.BuildMonthly(ctx, month)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(report)
}

func (s *ReportServiceImpl) ExportMonthly(ctx context.Context, month time.Time) (string, error) {
	content, err := s.RenderMonthly(ctx, month)
	if err != nil {
		return "", err
	}
	return s.exporter.Export(ctx, s.MonthlyFilename(month), content)
}

func (s *ReportServiceImpl) MonthlyFilename(month time.Time) string {
	return Filename(s.appName, month)
}
