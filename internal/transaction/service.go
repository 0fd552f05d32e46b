package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, int, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	SoftDeleteTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	RestoreTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
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
	Type        Type
	Description string
	Date        time.Time
	CategoryID  uuid.UUID
	AccountID   uuid.UUID
	ReceiptURL  string
}

// ListFilter narrows and pages a listing. Nil fields are not applied.
// OnlyDeleted restricts the listing to deleted rows and takes precedence
// over IncludeDeleted.
type ListFilter struct {
	UserID         uuid.UUID
	Type           *Type
	CategoryID     *uuid.UUID
	AccountID      *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	IncludeDeleted bool
	OnlyDeleted    bool
	Page           int
	Limit          int
}

// Create stores a new transaction. The description is trimmed and the date
// defaults to the current time when omitted.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &Transaction{
		Amount:      params.Amount,
		Type:        params.Type,
		Description: strings.TrimSpace(params.Description),
		Date:        date,
		CategoryID:  params.CategoryID,
		AccountID:   params.AccountID,
		ReceiptURL:  params.ReceiptURL,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id, userID, false)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, pagination.Meta, error) {
	filter.Page, filter.Limit = pagination.Normalize(filter.Page, filter.Limit)

	txs, count, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return txs, pagination.NewMeta(count, filter.Page, filter.Limit), nil
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	tx.Description = strings.TrimSpace(tx.Description)

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	return s.repo.SoftDeleteTransaction(ctx, id, userID)
}

func (s *Service) Restore(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	return s.repo.RestoreTransaction(ctx, id, userID)
}
