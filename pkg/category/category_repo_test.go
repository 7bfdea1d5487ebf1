package category

import (
	"context"
	"testing"

	"github.com/expenso/expenso/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, CategoryRepo) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewCategoryRepo(db)
}

func TestCategoryRepoImpl_Store(t *testing.T) {
	t.Run("should store a new category", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)

		// when
		err := repo.Store(ctx, Category{ID: "1", Name: "Food", Icon: "🍕", Color: "#FF6B6B", Position: 1})

		// then
		require.NoError(t, err)
		categories, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Food", categories[0].Name)
	})

	t.Run("should replace an existing category with the same id", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		require.NoError(t, repo.Store(ctx, Category{ID: "1", Name: "Food", Icon: "🍕", Position: 1}))

		// when
		err := repo.Store(ctx, Category{ID: "1", Name: "Groceries", Icon: "🛒", Position: 2})

		// then
		require.NoError(t, err)
		categories, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Groceries", categories[0].Name)
		assert.Equal(t, 2, categories[0].Position)
	})
}

func TestCategoryRepoImpl_GetAll(t *testing.T) {
	t.Run("should order categories by position", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		require.NoError(t, repo.Store(ctx, Category{ID: "b", Name: "Bills", Position: 2}))
		require.NoError(t, repo.Store(ctx, Category{ID: "a", Name: "Food", Position: 1}))

		// when
		categories, err := repo.GetAll(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Food", categories[0].Name)
		assert.Equal(t, "Bills", categories[1].Name)
	})
}

func TestCategoryRepoImpl_Delete(t *testing.T) {
	t.Run("should delete by id and report the outcome", func(t *testing.T) {
		// given
		ctx, repo := setupTestRepository(t)
		require.NoError(t, repo.Store(ctx, Category{ID: "1", Name: "Food", Position: 1}))

		// when
		deleted, err := repo.Delete(ctx, "1")

		// then
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
