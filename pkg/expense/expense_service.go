package expense

import (
	"context"
	"fmt"

	"github.com/expenso/expenso/internal/event_bus"
	"github.com/expenso/expenso/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ExpenseService interface {
	// Create validates and appends a new expense. The id and creation
	// timestamp are assigned here; a zero Date defaults to the current time.
	Create(ctx context.Context, expense Expense) (Expense, error)
	// GetAll returns the full expense snapshot. A storage read failure
	// degrades to an empty snapshot rather than an error.
	GetAll(ctx context.Context) []Expense
	// Find returns the filtered and sorted view of the expense collection.
	Find(ctx context.Context, filter Filter) []Expense
	// Delete removes an expense by id. Deleting an unknown id is a no-op
	// success, which keeps retrying clients simple.
	Delete(ctx context.Context, id string) error
}

type ExpenseServiceImpl struct {
	repo     ExpenseRepo
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewExpenseService(repo ExpenseRepo, eventBus *event_bus.EventBus, clock utils.Clock) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	if err := expense.Validate(); err != nil {
		return Expense{}, err
	}

	expense.ID = uuid.NewString()
	expense.CreatedAt = s.clock.Now()
	if expense.Date.IsZero() {
		expense.Date = expense.CreatedAt
	}

	if err := s.repo.Store(ctx, expense); err != nil {
		return Expense{}, fmt.Errorf("failed to store expense: %w", err)
	}

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
		Id:       expense.ID,
		Amount:   expense.Amount,
		Category: expense.Category,
		Date:     expense.Date,
	})); err != nil {
		log.Warnf("failed to publish expense created event: %v", err)
	}

	return expense, nil
}

func (s *ExpenseServiceImpl) GetAll(ctx context.Context) []Expense {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		// Reads fall back to an empty collection so the views stay usable;
		// writes never swallow storage failures.
		log.Errorf("failed to read expenses, returning empty snapshot: %v", err)
		return []Expense{}
	}
	return expenses
}

func (s *ExpenseServiceImpl) Find(ctx context.Context, filter Filter) []Expense {
	return ApplyFilter(s.GetAll(ctx), filter)
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		log.Debugf("expense %s not found, delete treated as no-op", id)
		return nil
	}

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{Id: id})); err != nil {
		log.Warnf("failed to publish expense deleted event: %v", err)
	}
	return nil
}
