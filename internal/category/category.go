package category

import (
	"time"

	"github.com/google/uuid"
)

// Type separates income categories from expense categories. The same name
// may exist once per type for a given user.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category labels transactions and anchors budgets.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	Icon      string
	Color     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the category is soft-deleted.
func (c *Category) Deleted() bool {
	return c.DeletedAt != nil
}
