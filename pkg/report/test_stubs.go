package report

import (
	"context"
	"errors"

	"github.com/expenso/expenso/pkg/category"
	"github.com/expenso/expenso/pkg/expense"
)

type stubExpenseReader struct {
	expenses []expense.Expense
	err      error
}

func (s *stubExpenseReader) GetAll(_ context.Context) ([]expense.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses, nil
}

type stubCategoryReader struct {
	categories []category.Category
	err        error
}

func (s *stubCategoryReader) GetAll(_ context.Context) ([]category.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

type stubExporter struct {
	fail     bool
	filename string
	content  string
}

func (s *stubExporter) Export(_ context.Context, filename string, content string) (string, error) {
	if s.fail {
		return "", &ExportError{Filename: filename, Err: errors.New("disk full")}
	}
	s.filename = filename
	s.content = content
	return "/exports/" + filename, nil
}

func (s *stubExporter) reset() {
	s.fail = false
	s.filename = ""
	s.content = ""
}
