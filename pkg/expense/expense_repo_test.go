package expense

import (
	"context"
	"testing"
	"time"

	"github.com/expenso/expenso/internal/test_utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, ExpenseRepo) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewExpenseRepo(db)
}

func storedExpense(id string, amount string, date time.Time) Expense {
	return Expense{
		ID:        id,
		Amount:    decimal.RequireFromString(amount),
		Category:  "Food",
		Note:      "lunch",
		Date:      date,
		CreatedAt: date.Add(5 * time.Minute),
	}
}

func TestExpenseRepoImpl_Store(t *testing.T) {
	t.Run("should store and read back an expense unchanged", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		date := time.Date(2023, 10, 16, 13, 45, 0, 0, time.UTC)
		expense := storedExpense("exp-1", "12.50", date)

		// when
		err := repo.Store(ctx, expense)

		// then
		require.NoError(t, err)
		expenses, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "exp-1", expenses[0].ID)
		assert.True(t, expense.Amount.Equal(expenses[0].Amount))
		assert.Equal(t, "Food", expenses[0].Category)
		assert.Equal(t, "lunch", expenses[0].Note)
		assert.True(t, expense.Date.Equal(expenses[0].Date))
		assert.True(t, expense.CreatedAt.Equal(expenses[0].CreatedAt))
	})

	t.Run("should return expenses ordered by creation time", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		base := time.Date(2023, 10, 16, 13, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Store(ctx, storedExpense("later", "1", base.Add(time.Hour))))
		require.NoError(t, repo.Store(ctx, storedExpense("earlier", "1", base)))

		// when
		expenses, err := repo.GetAll(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "earlier", expenses[0].ID)
		assert.Equal(t, "later", expenses[1].ID)
	})
}

func TestExpenseRepoImpl_Delete(t *testing.T) {
	t.Run("should delete an existing expense", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		require.NoError(t, repo.Store(ctx, storedExpense("exp-1", "5", time.Now().UTC())))

		// when
		deleted, err := repo.Delete(ctx, "exp-1")

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		expenses, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("should report false for an unknown id", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)

		// when
		deleted, err := repo.Delete(ctx, "missing")

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestExpenseRepoImpl_Clear(t *testing.T) {
	t.Run("should remove the whole collection", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		require.NoError(t, repo.Store(ctx, storedExpense("exp-1", "5", time.Now().UTC())))
		require.NoError(t, repo.Store(ctx, storedExpense("exp-2", "6", time.Now().UTC())))

		// when
		err := repo.Clear(ctx)

		// then
		require.NoError(t, err)
		expenses, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}
