package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseCreatedEvent EventType = "expense.created"
	ExpenseDeletedEvent EventType = "expense.deleted"
	StorageClearedEvent EventType = "storage.cleared"
)

type ExpenseCreated struct {
	Id       string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

type ExpenseDeleted struct {
	Id string
}

// StorageCleared is published after both the expense and category
// collections have been wiped. Subscribers are expected to reseed
// whatever baseline data they own.
type StorageCleared struct {
	ClearedAt time.Time
}
