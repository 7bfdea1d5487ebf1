package stats

import (
	"context"
	"time"

	"github.com/expenso/expenso/internal/utils"
	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/daterange"
	"github.com/expenso/expenso/pkg/expense"
	log "github.com/sirupsen/logrus"
)

// ExpenseReader provides the full expense snapshot the aggregations run over.
type ExpenseReader interface {
	GetAll(ctx context.Context) []expense.Expense
}

// CategoryReader provides the category snapshot used to resolve display
// attributes by name.
type CategoryReader interface {
	GetAll(ctx context.Context) []category.Category
}

type StatsService interface {
	// GetSummaries recomputes the today/week/month triple from the current
	// snapshot on every call; nothing is memoized.
	GetSummaries(ctx context.Context) SummarySet
	GetBreakdown(ctx context.Context, from time.Time, to time.Time) []CategoryBreakdown
	// GetMonthlyPieChart returns the month-to-date per-category pie series.
	GetMonthlyPieChart(ctx context.Context) []ChartPoint
	// GetWeeklyBarChart returns the per-category series of the trailing
	// seven days, with unique labels.
	GetWeeklyBarChart(ctx context.Context) []ChartPoint
}

type StatsServiceImpl struct {
	expenses   ExpenseReader
	categories CategoryReader
	clock      utils.Clock
	weekStart  time.Weekday
}

func NewStatsService(expenses ExpenseReader, categories CategoryReader, clock utils.Clock, weekStart time.Weekday) *StatsServiceImpl {
	return &StatsServiceImpl{
		expenses:   expenses,
		categories: categories,
		clock:      clock,
		weekStart:  weekStart,
	}
}

func (s *StatsServiceImpl) GetSummaries(ctx context.Context) SummarySet {
	expenses := s.expenses.GetAll(ctx)
	log.Tracef("computing summaries over %d expenses", len(expenses))
	return Summaries(expenses, s.clock.Now(), s.weekStart)
}

func (s *StatsServiceImpl) GetBreakdown(ctx context.Context, from time.Time, to time.Time) []CategoryBreakdown {
	return Breakdown(s.expenses.GetAll(ctx), s.categories.GetAll(ctx), from, to)
}

func (s *StatsServiceImpl) GetMonthlyPieChart(ctx context.Context) []ChartPoint {
	now := s.clock.Now()
	start, _ := daterange.Month(now)
	return ChartSeries(s.expenses.GetAll(ctx), s.categories.GetAll(ctx), start, now)
}

func (s *StatsServiceImpl) GetWeeklyBarChart(ctx context.Context) []ChartPoint {
	now := s.clock.Now()
	start := now.AddDate(0, 0, -7)
	return ChartSeries(s.expenses.GetAll(ctx), s.categories.GetAll(ctx), start, now)
}
