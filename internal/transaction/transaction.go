package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a financial transaction. Category and account
// references are weak: creation does not verify the referenced rows.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        Type
	Description string
	Date        time.Time
	CategoryID  uuid.UUID
	AccountID   uuid.UUID
	ReceiptURL  string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Deleted reports whether the transaction is soft-deleted.
func (t *Transaction) Deleted() bool {
	return t.DeletedAt != nil
}
