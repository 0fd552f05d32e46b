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

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CategoryID  uuid.UUID       `json:"category"`
	AccountID   uuid.UUID       `json:"account"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
	UserID      uuid.UUID       `json:"userId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type TransactionsService struct {
	client *Client
}

// TransactionFilter narrows List calls. Dates use YYYY-MM-DD. OnlyDeleted
// restricts the listing to soft-deleted transactions.
type TransactionFilter struct {
	Type           string
	CategoryID     uuid.UUID
	AccountID      uuid.UUID
	StartDate      string
	EndDate        string
	IncludeDeleted bool
	OnlyDeleted    bool
}

func (f TransactionFilter) queryParams() url.Values {
	q := url.Values{}

	if f.Type != "" {
		q.Set("type", f.Type)
	}

	if f.CategoryID != uuid.Nil {
		q.Set("category", f.CategoryID.String())
	}

	if f.AccountID != uuid.Nil {
		q.Set("account", f.AccountID.String())
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

type CreateTransactionParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date,omitempty"`
	CategoryID  uuid.UUID       `json:"category"`
	AccountID   uuid.UUID       `json:"account"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
}

type UpdateTransactionParams struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	CategoryID  *uuid.UUID       `json:"category,omitempty"`
	AccountID   *uuid.UUID       `json:"account,omitempty"`
	ReceiptURL  *string          `json:"receiptUrl,omitempty"`
}

type transactionEnvelope struct {
	Transaction Transaction `json:"transaction"`
}

type transactionListEnvelope struct {
	Transactions []Transaction `json:"transactions"`
	pagination.Meta
}

func (s *TransactionsService) List(ctx context.Context, filter TransactionFilter, page, limit int) ([]Transaction, pagination.Meta, error) {
	q := pageQuery(filter.queryParams(), page, limit)

	env, err := do[transactionListEnvelope](ctx, s.client, http.MethodGet, "/api/transactions", q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return env.Transactions, env.Meta, nil
}

func (s *TransactionsService) Get(ctx context.Context, id uuid.UUID) (Transaction, error) {
	env, err := do[transactionEnvelope](ctx, s.client, http.MethodGet, "/api/transactions/"+id.String(), nil, nil)

	return env.Transaction, err
}

func (s *TransactionsService) Create(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	env, err := do[transactionEnvelope](ctx, s.client, http.MethodPost, "/api/transactions", nil, params)

	return env.Transaction, err
}

func (s *TransactionsService) Update(ctx context.Context, id uuid.UUID, params UpdateTransactionParams) (Transaction, error) {
	env, err := do[transactionEnvelope](ctx, s.client, http.MethodPut, "/api/transactions/"+id.String(), nil, params)

	return env.Transaction, err
}

func (s *TransactionsService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/api/transactions/"+id.String(), nil, nil)

	return err
}

func (s *TransactionsService) Restore(ctx context.Context, id uuid.UUID) (Transaction, error) {
	env, err := do[transactionEnvelope](ctx, s.client, http.MethodPatch, "/api/transactions/"+id.String()+"/restore", nil, nil)

	return env.Transaction, err
}
