package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var ErrNotFound = errors.New("budget not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*Budget, error)
	ListBudgets(ctx context.Context, filter ListFilter) ([]*Budget, int, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	SoftDeleteBudget(ctx context.Context, id, userID uuid.UUID) (*Budget, error)
	RestoreBudget(ctx context.Context, id, userID uuid.UUID) (*Budget, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Period      Period
	CategoryID  uuid.UUID
	StartDate   time.Time
	EndDate     *time.Time
	IsRecurring bool
}

// ListFilter narrows and pages a listing. Nil fields are not applied.
// OnlyDeleted restricts the listing to deleted rows and takes precedence
// over IncludeDeleted.
type ListFilter struct {
	UserID         uuid.UUID
	Period         *Period
	CategoryID     *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	IncludeDeleted bool
	OnlyDeleted    bool
	Page           int
	Limit          int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	b := &Budget{
		Amount:      params.Amount,
		Period:      params.Period,
		CategoryID:  params.CategoryID,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		IsRecurring: params.IsRecurring,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, id, userID, false)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Budget, pagination.Meta, error) {
	filter.Page, filter.Limit = pagination.Normalize(filter.Page, filter.Limit)

	budgets, count, err := s.repo.ListBudgets(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return budgets, pagination.NewMeta(count, filter.Page, filter.Limit), nil
}

// ListByPeriod lists the user's budgets for one recurrence period.
func (s *Service) ListByPeriod(ctx context.Context, userID uuid.UUID, period Period, page, limit int) ([]*Budget, pagination.Meta, error) {
	return s.List(ctx, ListFilter{
		UserID: userID,
		Period: &period,
		Page:   page,
		Limit:  limit,
	})
}

func (s *Service) Update(ctx context.Context, b *Budget) error {
	return s.repo.UpdateBudget(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) (*Budget, error) {
	return s.repo.SoftDeleteBudget(ctx, id, userID)
}

func (s *Service) Restore(ctx context.Context, id, userID uuid.UUID) (*Budget, error) {
	return s.repo.RestoreBudget(ctx, id, userID)
}
