package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/budget"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type budgetResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Period      budget.Period   `json:"period"`
	CategoryID  uuid.UUID       `json:"category"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate,omitempty"`
	IsRecurring bool            `json:"isRecurring"`
	UserID      uuid.UUID       `json:"userId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type singleResponse struct {
	Budget  budgetResponse `json:"budget"`
	Message string         `json:"message,omitempty"`
}

type listResponse struct {
	Budgets []budgetResponse `json:"budgets"`
	pagination.Meta
}

func toResponse(b *budget.Budget) budgetResponse {
	resp := budgetResponse{
		ID:          b.ID,
		Amount:      b.Amount,
		Period:      b.Period,
		CategoryID:  b.CategoryID,
		StartDate:   b.StartDate.Format(time.DateOnly),
		IsRecurring: b.IsRecurring,
		UserID:      b.UserID,
		IsDeleted:   b.Deleted(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.EndDate != nil {
		resp.EndDate = b.EndDate.Format(time.DateOnly)
	}

	return resp
}

func toListResponse(budgets []*budget.Budget, meta pagination.Meta) listResponse {
	resp := listResponse{
		Budgets: make([]budgetResponse, len(budgets)),
		Meta:    meta,
	}
	for i, b := range budgets {
		resp.Budgets[i] = toResponse(b)
	}

	return resp
}
