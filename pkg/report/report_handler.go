package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/expenso/expenso/internal/rest"
	"github.com/expenso/expenso/internal/utils"
	log "github.com/sirupsen/logrus"
)

const monthQueryFormat = "2006-01"

type ExportResultDTO struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

type ReportHandler struct {
	service ReportService
	clock   utils.Clock
}

func NewReportHandler(service ReportService, clock utils.Clock) *ReportHandler {
	return &ReportHandler{service: service, clock: clock}
}

// GetMonthly renders the month's report and returns it as a CSV download.
// The month query parameter uses the 2006-01 layout and defaults to the
// current month.
func (h *ReportHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	month, ok := h.monthFromQuery(w, r)
	if !ok {
		return
	}

	content, err := h.service.RenderMonthly(r.Context(), month)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+h.service.MonthlyFilename(month)+"\"")
	if _, err = w.Write([]byte(content)); err != nil {
		log.Error(err)
	}
}

// ExportMonthly writes the month's report through the exporter and returns
// the written location.
func (h *ReportHandler) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	month, ok := h.monthFromQuery(w, r)
	if !ok {
		return
	}

	path, err := h.service.ExportMonthly(r.Context(), month)
	if err != nil {
		var exportErr *ExportError
		if errors.As(err, &exportErr) {
			http.Error(w, "Could not write report", http.StatusInsufficientStorage)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(ExportResultDTO{Path: path, Filename: h.service.MonthlyFilename(month)})
	if err != nil {
		log.Error(err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *ReportHandler) monthFromQuery(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get("month")
	if value == "" {
		return h.clock.Now(), true
	}
	month, err := time.Parse(monthQueryFormat, value)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid month",
			Details: "month must use the YYYY-MM format",
		})
		if encodeErr != nil {
			log.Error(encodeErr)
		}
		return time.Time{}, false
	}
	return month, true
}
