package stats

import (
	"context"

	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/expense"
)

type stubExpenseReader struct {
	expenses []expense.Expense
}

func (s *stubExpenseReader) GetAll(ctx context.Context) []expense.Expense {
	return s.expenses
}

func (s *stubExpenseReader) set(expenses []expense.Expense) {
	s.expenses = expenses
}

func (s *stubExpenseReader) reset() {
	s.expenses = nil
}

type stubCategoryReader struct {
	categories []category.Category
}

func (s *stubCategoryReader) GetAll(ctx context.Context) []category.Category {
	return s.categories
}

func (s *stubCategoryReader) set(categories []category.Category) {
	s.categories = categories
}

func (s *stubCategoryReader) reset() {
	s.categories = nil
}
