package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is the recurrence window a budget amount applies to.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Budget caps spending for a category over a period. The category reference
// is weak: creation does not verify the category row transactionally, and the
// schema does not restrict it to expense categories.
type Budget struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Period      Period
	CategoryID  uuid.UUID
	StartDate   time.Time
	EndDate     *time.Time
	IsRecurring bool
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Deleted reports whether the budget is soft-deleted.
func (b *Budget) Deleted() bool {
	return b.DeletedAt != nil
}
