package app

import (
	"database/sql"

	"github.com/expenso/expenso/internal/config"
	"github.com/expenso/expenso/internal/event_bus"
	"github.com/expenso/expenso/internal/utils"
	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/expense"
	"github.com/expenso/expenso/pkg/report"
	"github.com/expenso/expenso/pkg/stats"
	"github.com/expenso/expenso/pkg/storage"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService expense.ExpenseService
	ExpenseHandler *expense.ExpenseHandler

	CategoryRepo    category.CategoryRepo
	CategoryService *category.CategoryServiceImpl
	CategoryHandler *category.CategoryHandler

	StatsService *stats.StatsServiceImpl
	StatsHandler *stats.StatsHandler

	ReportRenderer *report.CSVReportRenderer
	ReportExporter report.Exporter
	ReportService  *report.ReportServiceImpl
	ReportHandler  *report.ReportHandler

	StorageService *storage.StorageServiceImpl
	StorageHandler *storage.StorageHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}
	weekStart := cfg.Week.StartWeekday()

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.EventBus, deps.Clock)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService, deps.Clock, weekStart)

	deps.CategoryRepo = category.NewCategoryRepo(db)
	deps.CategoryService = category.NewCategoryService(deps.CategoryRepo, deps.EventBus)
	deps.CategoryHandler = category.NewCategoryHandler(deps.CategoryService)

	deps.StatsService = stats.NewStatsService(deps.ExpenseService, deps.CategoryService, deps.Clock, weekStart)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService)

	deps.ReportRenderer = report.NewCSVReportRenderer(cfg.App.Name, cfg.App.CurrencySymbol)
	deps.ReportExporter = report.NewFileExporter(cfg.Export.Dir)
	deps.ReportService = report.NewReportService(deps.ExpenseRepo, deps.CategoryRepo, deps.ReportRenderer, deps.ReportExporter, deps.Clock, cfg.App.Name)
	deps.ReportHandler = report.NewReportHandler(deps.ReportService, deps.Clock)

	deps.StorageService = storage.NewStorageService(deps.ExpenseRepo, deps.CategoryRepo, deps.EventBus, deps.Clock)
	deps.StorageHandler = storage.NewStorageHandler(deps.StorageService)

	return deps
}
