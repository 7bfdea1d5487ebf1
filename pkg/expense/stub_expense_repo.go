package expense

import "context"

type StubExpenseRepo struct {
	data []Expense
	// FailReads makes GetAll return an error to exercise the read fallback.
	FailReads bool
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{}
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) error {
	s.data = append(s.data, expense)
	return nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context) ([]Expense, error) {
	if s.FailReads {
		return nil, context.DeadlineExceeded
	}
	snapshot := make([]Expense, len(s.data))
	copy(snapshot, s.data)
	return snapshot, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, e := range s.data {
		if e.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Clear(ctx context.Context) error {
	s.data = nil
	return nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = nil
	s.FailReads = false
}
