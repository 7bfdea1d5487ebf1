package storage

import (
	"context"
	"fmt"

	"github.com/expenso/expenso/internal/event_bus"
	"github.com/expenso/expenso/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Clearer empties one stored collection.
type Clearer interface {
	Clear(ctx context.Context) error
}

type StorageService interface {
	// ClearAll removes every stored expense and category and announces the
	// wipe on the event bus.
	ClearAll(ctx context.Context) error
}

type StorageServiceImpl struct {
	expenses   Clearer
	categories Clearer
	eventBus   *event_bus.EventBus
	clock      utils.Clock
}

func NewStorageService(expenses Clearer, categories Clearer, eventBus *event_bus.EventBus, clock utils.Clock) *StorageServiceImpl {
	return &StorageServiceImpl{
		expenses:   expenses,
		categories: categories,
		eventBus:   eventBus,
		clock:      clock,
	}
}

func (s *StorageServiceImpl) ClearAll(ctx context.Context) error {
	if err := s.expenses.Clear(ctx); err != nil {
		log.Error(err)
		return fmt.Errorf("could not clear expenses: %w", err)
	}
	if err := s.categories.Clear(ctx); err != nil {
		log.Error(err)
		return fmt.Errorf("could not clear categories: %w", err)
	}
	event := event_bus.NewEvent(ctx, event_bus.StorageClearedEvent, event_bus.StorageCleared{ClearedAt: s.clock.Now()})
	if err := s.eventBus.Publish(event); err != nil {
		log.Warnf("failed to publish storage cleared event: %v", err)
	}
	return nil
}
