package stats

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/expenso/expenso/internal/rest"
)

type SummaryDTO struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

type SummarySetDTO struct {
	Today     SummaryDTO `json:"today"`
	ThisWeek  SummaryDTO `json:"thisWeek"`
	ThisMonth SummaryDTO `json:"thisMonth"`
}

type CategoryBreakdownDTO struct {
	Category   string `json:"category"`
	Total      string `json:"total"`
	Percentage string `json:"percentage"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
}

type ChartPointDTO struct {
	Label  string `json:"label"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Color  string `json:"color"`
}

type StatsHandler struct {
	statsService StatsService
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{statsService}
}

func (handler *StatsHandler) GetSummaries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summaries := handler.statsService.GetSummaries(r.Context())
	response := SummarySetDTO{
		Today:     summaryToDTO(summaries.Today),
		ThisWeek:  summaryToDTO(summaries.ThisWeek),
		ThisMonth: summaryToDTO(summaries.ThisMonth),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	fromDateString := r.URL.Query().Get("from")
	toDateString := r.URL.Query().Get("to")
	fromDate, err := time.Parse(time.RFC3339, fromDateString)
	if err != nil {
		writeBadRequest(w, "Invalid from date", "from must be in RFC3339 format")
		return
	}
	toDate, err := time.Parse(time.RFC3339, toDateString)
	if err != nil {
		writeBadRequest(w, "Invalid to date", "to must be in RFC3339 format")
		return
	}

	breakdown := handler.statsService.GetBreakdown(r.Context(), fromDate, toDate)
	response := make([]CategoryBreakdownDTO, 0, len(breakdown))
	for _, item := range breakdown {
		response = append(response, CategoryBreakdownDTO{
			Category:   item.Category,
			Total:      item.Total.StringFixed(2),
			Percentage: item.Percentage.StringFixed(2),
			Icon:       item.Icon,
			Color:      item.Color,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetPieChart(w http.ResponseWriter, r *http.Request) {
	handler.writeChart(w, handler.statsService.GetMonthlyPieChart(r.Context()))
}

func (handler *StatsHandler) GetBarChart(w http.ResponseWriter, r *http.Request) {
	handler.writeChart(w, handler.statsService.GetWeeklyBarChart(r.Context()))
}

func (handler *StatsHandler) writeChart(w http.ResponseWriter, points []ChartPoint) {
	w.Header().Set("Content-Type", "application/json")

	response := make([]ChartPointDTO, 0, len(points))
	for _, p := range points {
		response = append(response, ChartPointDTO{
			Label:  p.Label,
			Name:   p.Name,
			Amount: p.Amount.StringFixed(2),
			Color:  p.Color,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBadRequest(w http.ResponseWriter, message string, details string) {
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func summaryToDTO(summary Summary) SummaryDTO {
	return SummaryDTO{
		Total: summary.Total.StringFixed(2),
		Count: summary.Count,
	}
}
