package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrDuplicateName = errors.New("an account with this name already exists")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*Account, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*Account, int, error)
	UpdateAccount(ctx context.Context, a *Account) error
	SoftDeleteAccount(ctx context.Context, id, userID uuid.UUID) (*Account, error)
	RestoreAccount(ctx context.Context, id, userID uuid.UUID) (*Account, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      uuid.UUID
	Name        string
	Type        Type
	Balance     decimal.Decimal
	Description string
}

// ListFilter narrows and pages a listing. Nil fields are not applied.
// Deleted rows are excluded unless IncludeDeleted is set; OnlyDeleted
// restricts the listing to deleted rows and takes precedence.
type ListFilter struct {
	UserID         uuid.UUID
	Type           *Type
	Name           *string
	IncludeDeleted bool
	OnlyDeleted    bool
	Page           int
	Limit          int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	a := &Account{
		Name:        params.Name,
		Type:        params.Type,
		Balance:     params.Balance,
		Description: params.Description,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id, userID, false)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Account, pagination.Meta, error) {
	filter.Page, filter.Limit = pagination.Normalize(filter.Page, filter.Limit)

	accounts, count, err := s.repo.ListAccounts(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return accounts, pagination.NewMeta(count, filter.Page, filter.Limit), nil
}

func (s *Service) Update(ctx context.Context, a *Account) error {
	return s.repo.UpdateAccount(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	return s.repo.SoftDeleteAccount(ctx, id, userID)
}

func (s *Service) Restore(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	return s.repo.RestoreAccount(ctx, id, userID)
}
