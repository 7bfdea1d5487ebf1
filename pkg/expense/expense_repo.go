package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseRepo interface {
	// Store appends a new expense. Expenses are never updated in place.
	Store(ctx context.Context, expense Expense) error
	// GetAll returns a full snapshot of the expense collection.
	GetAll(ctx context.Context) ([]Expense, error)
	// Delete removes the expense with the given id and reports whether a
	// record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	// Clear removes the whole expense collection.
	Clear(ctx context.Context) error
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r ExpenseRepoImpl) Store(ctx context.Context, expense Expense) error {
	query := `INSERT INTO expense (id, amount, category, note, event_date, created_at)
				VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		expense.ID,
		expense.Amount.String(),
		expense.Category,
		expense.Note,
		expense.Date.Format(time.RFC3339Nano),
		expense.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r ExpenseRepoImpl) GetAll(ctx context.Context) ([]Expense, error) {
	query := `SELECT id, amount, category, note, event_date, created_at FROM expense ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var amount, eventDate, createdAt string
		if err := rows.Scan(
			&expense.ID,
			&amount,
			&expense.Category,
			&expense.Note,
			&eventDate,
			&createdAt,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			err := fmt.Errorf("could not parse amount %q: %w", amount, err)
			log.Error(err)
			return nil, err
		}
		expense.Date, err = time.Parse(time.RFC3339Nano, eventDate)
		if err != nil {
			err := fmt.Errorf("could not parse event date: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			err := fmt.Errorf("could not parse creation timestamp: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r ExpenseRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM expense WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r ExpenseRepoImpl) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM expense"); err != nil {
		err := fmt.Errorf("could not clear expenses: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
