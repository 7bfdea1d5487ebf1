package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummaries).Methods("GET")
	r.HandleFunc("/api/stats/breakdown", deps.StatsHandler.GetBreakdown).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/stats/chart/pie", deps.StatsHandler.GetPieChart).Methods("GET")
	r.HandleFunc("/api/stats/chart/bar", deps.StatsHandler.GetBarChart).Methods("GET")

	// Reports
	r.HandleFunc("/api/report/monthly", deps.ReportHandler.GetMonthly).Methods("GET")
	r.HandleFunc("/api/report/monthly/export", deps.ReportHandler.ExportMonthly).Methods("POST")

	// Data management
	r.HandleFunc("/api/data", deps.StorageHandler.ClearAll).Methods("DELETE")
}
