package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type Budget struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"`
	CategoryID  uuid.UUID       `json:"category"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate,omitempty"`
	IsRecurring bool            `json:"isRecurring"`
	UserID      uuid.UUID       `json:"userId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type BudgetsService struct {
	client *Client
}

// BudgetFilter narrows List calls. Dates use YYYY-MM-DD. OnlyDeleted
// restricts the listing to soft-deleted budgets.
type BudgetFilter struct {
	Period         string
	CategoryID     uuid.UUID
	StartDate      string
	EndDate        string
	IncludeDeleted bool
	OnlyDeleted    bool
}

func (f BudgetFilter) queryParams() url.Values {
	q := url.Values{}

	if f.Period != "" {
		q.Set("period", f.Period)
	}

	if f.CategoryID != uuid.Nil {
		q.Set("category", f.CategoryID.String())
	}

	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}

	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}

	if f.IncludeDeleted {
		q.Set("includeDeleted", "true")
	}

	if f.OnlyDeleted {
		q.Set("onlyDeleted", "true")
	}

	return q
}

type CreateBudgetParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"`
	CategoryID  uuid.UUID       `json:"category"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate,omitempty"`
	IsRecurring *bool           `json:"isRecurring,omitempty"`
}

type UpdateBudgetParams struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Period      *string          `json:"period,omitempty"`
	CategoryID  *uuid.UUID       `json:"category,omitempty"`
	StartDate   *string          `json:"startDate,omitempty"`
	EndDate     *string          `json:"endDate,omitempty"`
	IsRecurring *bool            `json:"isRecurring,omitempty"`
}

type budgetEnvelope struct {
	Budget Budget `json:"budget"`
}

type budgetListEnvelope struct {
	Budgets []Budget `json:"budgets"`
	pagination.Meta
}

func (s *BudgetsService) List(ctx context.Context, filter BudgetFilter, page, limit int) ([]Budget, pagination.Meta, error) {
	q := pageQuery(filter.queryParams(), page, limit)

	env, err := do[budgetListEnvelope](ctx, s.client, http.MethodGet, "/api/budgets", q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return env.Budgets, env.Meta, nil
}

// GetByPeriod lists the budgets of one recurrence period.
func (s *BudgetsService) GetByPeriod(ctx context.Context, period string, page, limit int) ([]Budget, pagination.Meta, error) {
	q := pageQuery(nil, page, limit)

	env, err := do[budgetListEnvelope](ctx, s.client, http.MethodGet, "/api/budgets/period/"+url.PathEscape(period), q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return env.Budgets, env.Meta, nil
}

func (s *BudgetsService) Get(ctx context.Context, id uuid.UUID) (Budget, error) {
	env, err := do[budgetEnvelope](ctx, s.client, http.MethodGet, "/api/budgets/"+id.String(), nil, nil)

	return env.Budget, err
}

func (s *BudgetsService) Create(ctx context.Context, params CreateBudgetParams) (Budget, error) {
	env, err := do[budgetEnvelope](ctx, s.client, http.MethodPost, "/api/budgets", nil, params)

	return env.Budget, err
}

func (s *BudgetsService) Update(ctx context.Context, id uuid.UUID, params UpdateBudgetParams) (Budget, error) {
	env, err := do[budgetEnvelope](ctx, s.client, http.MethodPut, "/api/budgets/"+id.String(), nil, params)

	return env.Budget, err
}

func (s *BudgetsService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/api/budgets/"+id.String(), nil, nil)

	return err
}

func (s *BudgetsService) Restore(ctx context.Context, id uuid.UUID) (Budget, error) {
	env, err := do[budgetEnvelope](ctx, s.client, http.MethodPatch, "/api/budgets/"+id.String()+"/restore", nil, nil)

	return env.Budget, err
}
