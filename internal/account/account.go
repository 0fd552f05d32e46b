package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies an account.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeCredit     Type = "credit"
	TypeInvestment Type = "investment"
	TypeCash       Type = "cash"
	TypeOther      Type = "other"
)

// Account represents a money account owned by a user.
type Account struct {
	ID          uuid.UUID
	Name        string
	Type        Type
	Balance     decimal.Decimal
	Description string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Deleted reports whether the account is soft-deleted.
func (a *Account) Deleted() bool {
	return a.DeletedAt != nil
}
