package category

import (
	"context"
	"fmt"

	"github.com/expenso/expenso/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type CategoryService interface {
	// GetAll returns the category collection, seeding the default set first
	// when the collection is empty. A read failure degrades to the default
	// set so expense views can still resolve icons and colors.
	GetAll(ctx context.Context) []Category
	Create(ctx context.Context, category Category) (Category, error)
	// Save stores a category with append-or-replace-by-id semantics.
	Save(ctx context.Context, category Category) error
	// Delete removes a category by id. Unknown ids are a no-op success, and
	// expenses referencing the deleted category's name are left untouched.
	Delete(ctx context.Context, id string) error
}

type CategoryServiceImpl struct {
	repo CategoryRepo
}

func NewCategoryService(repo CategoryRepo, eventBus *event_bus.EventBus) *CategoryServiceImpl {
	service := &CategoryServiceImpl{repo: repo}
	event_bus.SubscribeTyped[event_bus.StorageCleared](
		eventBus,
		event_bus.StorageClearedEvent,
		func(e event_bus.EventT[event_bus.StorageCleared]) error {
			log.Debug("storage cleared, reseeding default categories")
			return service.EnsureDefaults(e.Context())
		},
	)
	return service
}

func (s *CategoryServiceImpl) GetAll(ctx context.Context) []Category {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Errorf("failed to read categories, falling back to defaults: %v", err)
		return DefaultCategories()
	}
	if len(categories) == 0 {
		if err := s.EnsureDefaults(ctx); err != nil {
			log.Errorf("failed to seed default categories: %v", err)
			return DefaultCategories()
		}
		return DefaultCategories()
	}
	return categories
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	if err := category.Validate(); err != nil {
		return Category{}, err
	}
	category.ID = uuid.NewString()
	if category.Position == 0 {
		category.Position = s.nextPosition(ctx)
	}
	if err := s.repo.Store(ctx, category); err != nil {
		return Category{}, fmt.Errorf("failed to store category: %w", err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Save(ctx context.Context, category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if category.ID == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if err := s.repo.Store(ctx, category); err != nil {
		return fmt.Errorf("failed to store category: %w", err)
	}
	return nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !deleted {
		log.Debugf("category %s not found, delete treated as no-op", id)
	}
	// Expenses referencing the deleted name keep it as a dangling reference.
	return nil
}

// EnsureDefaults seeds the fixed default categories when the collection is empty.
func (s *CategoryServiceImpl) EnsureDefaults(ctx context.Context) error {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	log.Info("category collection is empty, seeding defaults")
	for _, c := range DefaultCategories() {
		if err := s.repo.Store(ctx, c); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
		}
	}
	return nil
}

func (s *CategoryServiceImpl) nextPosition(ctx context.Context) int {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return 1
	}
	maxPosition := 0
	for _, c := range categories {
		if c.Position > maxPosition {
			maxPosition = c.Position
		}
	}
	return maxPosition + 1
}
