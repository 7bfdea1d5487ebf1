package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded spending event. It is immutable once stored.
type Expense struct {
	ID     string
	Amount decimal.Decimal
	// Category is a soft reference to a category by name. The referenced
	// category may have been renamed or deleted; a dangling name is a normal
	// state, never an error.
	Category string
	Note     string
	// Date is when the expense occurred. It is user-settable and independent
	// from CreatedAt; all date filtering and sorting uses this field.
	Date time.Time
	// CreatedAt is the record creation instant, kept for display only.
	CreatedAt time.Time
}

type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter describes a single request of the browsable expense view. It is a
// plain value passed on every call; the presentation layer owns whatever
// mutable copy it needs.
type Filter struct {
	// Category, when non-empty, retains only exact (case-sensitive) matches.
	Category string
	// SearchQuery, when non-empty, retains expenses whose note or category
	// contains it as a case-insensitive substring.
	SearchQuery string
	SortBy      SortField
	Order       SortOrder
}

// ValidationError reports malformed user input for a new expense. It is
// surfaced before any persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the invariants of a new expense: a strictly positive amount
// and a selected category.
func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if e.Category == "" {
		return &ValidationError{Field: "category", Reason: "must be selected"}
	}
	return nil
}
