package category

import (
	"context"
	"sort"
)

type StubCategoryRepo struct {
	data map[string]Category
	// FailReads makes GetAll return an error to exercise the read fallback.
	FailReads bool
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{data: map[string]Category{}}
}

func (s *StubCategoryRepo) Store(ctx context.Context, category Category) error {
	s.data[category.ID] = category
	return nil
}

func (s *StubCategoryRepo) GetAll(ctx context.Context) ([]Category, error) {
	if s.FailReads {
		return nil, context.DeadlineExceeded
	}
	categories := make([]Category, 0, len(s.data))
	for _, c := range s.data {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Position < categories[j].Position
	})
	return categories, nil
}

func (s *StubCategoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubCategoryRepo) Clear(ctx context.Context) error {
	s.data = map[string]Category{}
	return nil
}

func (s *StubCategoryRepo) Cleanup() {
	s.data = map[string]Category{}
	s.FailReads = false
}
