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

type Account struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	UserID      uuid.UUID       `json:"userId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type AccountsService struct {
	client *Client
}

// AccountFilter narrows List calls. Zero-valued fields are omitted from the
// query string. OnlyDeleted restricts the listing to soft-deleted accounts.
type AccountFilter struct {
	Type           string
	Name           string
	IncludeDeleted bool
	OnlyDeleted    bool
}

func (f AccountFilter) queryParams() url.Values {
	q := url.Values{}

	if f.Type != "" {
		q.Set("type", f.Type)
	}

	if f.Name != "" {
		q.Set("name", f.Name)
	}

	if f.IncludeDeleted {
		q.Set("includeDeleted", "true")
	}

	if f.OnlyDeleted {
		q.Set("onlyDeleted", "true")
	}

	return q
}

type CreateAccountParams struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Description string           `json:"description,omitempty"`
}

type UpdateAccountParams struct {
	Name        *string          `json:"name,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type accountEnvelope struct {
	Account Account `json:"account"`
}

type accountListEnvelope struct {
	Accounts []Account `json:"accounts"`
	pagination.Meta
	// Total is a legacy alias for Count still emitted by older deployments.
	Total *int `json:"total,omitempty"`
}

func (s *AccountsService) List(ctx context.Context, filter AccountFilter, page, limit int) ([]Account, pagination.Meta, error) {
	q := pageQuery(filter.queryParams(), page, limit)

	env, err := do[accountListEnvelope](ctx, s.client, http.MethodGet, "/api/accounts", q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if env.Count == 0 && env.Total != nil {
		env.Count = *env.Total
	}

	return env.Accounts, env.Meta, nil
}

func (s *AccountsService) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	env, err := do[accountEnvelope](ctx, s.client, http.MethodGet, "/api/accounts/"+id.String(), nil, nil)

	return env.Account, err
}

func (s *AccountsService) Create(ctx context.Context, params CreateAccountParams) (Account, error) {
	env, err := do[accountEnvelope](ctx, s.client, http.MethodPost, "/api/accounts", nil, params)

	return env.Account, err
}

func (s *AccountsService) Update(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (Account, error) {
	env, err := do[accountEnvelope](ctx, s.client, http.MethodPut, "/api/accounts/"+id.String(), nil, params)

	return env.Account, err
}

func (s *AccountsService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/api/accounts/"+id.String(), nil, nil)

	return err
}

func (s *AccountsService) Restore(ctx context.Context, id uuid.UUID) (Account, error) {
	env, err := do[accountEnvelope](ctx, s.client, http.MethodPatch, "/api/accounts/"+id.String()+"/restore", nil, nil)

	return env.Account, err
}
