package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/expenso/expenso/internal/rest"
	"github.com/expenso/expenso/internal/utils"
	"github.com/expenso/expenso/pkg/daterange"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID        string     `json:"id,omitempty"`
	Amount    string     `json:"amount"`
	Category  string     `json:"category"`
	Note      string     `json:"note,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	// DateLabel is a relative display label ("Today", "This Week", ...).
	DateLabel string `json:"dateLabel,omitempty"`
}

type DayGroupDTO struct {
	Day      string       `json:"day"`
	Expenses []ExpenseDTO `json:"expenses"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
	clock          utils.Clock
	weekStart      time.Weekday
}

func NewExpenseHandler(expenseService ExpenseService, clock utils.Clock, weekStart time.Weekday) *ExpenseHandler {
	return &ExpenseHandler{expenseService, clock, weekStart}
}

func (handler *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var expenseDTO ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(expenseDTO)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := handler.expenseService.Create(r.Context(), expense)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(w, validationErr)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(handler.expenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := filterFromQuery(r)
	expenses := handler.expenseService.Find(r.Context(), filter)

	if r.URL.Query().Get("groupBy") == "day" {
		groups := GroupByDay(expenses)
		groupDTOs := make([]DayGroupDTO, 0, len(groups))
		for _, group := range groups {
			groupDTO := DayGroupDTO{Day: group.Day, Expenses: make([]ExpenseDTO, 0, len(group.Expenses))}
			for _, e := range group.Expenses {
				groupDTO.Expenses = append(groupDTO.Expenses, handler.expenseToDTO(e))
			}
			groupDTOs = append(groupDTOs, groupDTO)
		}
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(groupDTOs); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	expenseDTOs := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		expenseDTOs = append(expenseDTOs, handler.expenseToDTO(e))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseDTOs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	expenseId := vars["id"]

	if err := handler.expenseService.Delete(r.Context(), expenseId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) Filter {
	query := r.URL.Query()
	return Filter{
		Category:    query.Get("category"),
		SearchQuery: query.Get("search"),
		SortBy:      SortField(query.Get("sortBy")),
		Order:       SortOrder(query.Get("sortOrder")),
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid expense",
		Details: err.Error(),
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func (handler *ExpenseHandler) expenseToDTO(expense Expense) ExpenseDTO {
	date := expense.Date
	createdAt := expense.CreatedAt
	return ExpenseDTO{
		ID:        expense.ID,
		Amount:    expense.Amount.StringFixed(2),
		Category:  expense.Category,
		Note:      expense.Note,
		Date:      &date,
		CreatedAt: &createdAt,
		DateLabel: daterange.RelativeLabel(expense.Date, handler.clock.Now(), handler.weekStart),
	}
}

func DTOToExpense(expenseDTO ExpenseDTO) (Expense, error) {
	amount, err := decimal.NewFromString(expenseDTO.Amount)
	if err != nil {
		return Expense{}, &ValidationError{Field: "amount", Reason: "must be a decimal number"}
	}

	var date time.Time
	if expenseDTO.Date != nil {
		date = *expenseDTO.Date
	}

	return Expense{
		ID:       expenseDTO.ID,
		Amount:   amount,
		Category: expenseDTO.Category,
		Note:     expenseDTO.Note,
		Date:     date,
	}, nil
}
