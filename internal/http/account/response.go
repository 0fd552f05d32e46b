package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type accountResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        account.Type    `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	UserID      uuid.UUID       `json:"userId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type singleResponse struct {
	Account accountResponse `json:"account"`
	Message string          `json:"message,omitempty"`
}

type listResponse struct {
	Accounts []accountResponse `json:"accounts"`
	pagination.Meta
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Balance:     a.Balance,
		Description: a.Description,
		UserID:      a.UserID,
		IsDeleted:   a.Deleted(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toListResponse(accounts []*account.Account, meta pagination.Meta) listResponse {
	resp := listResponse{
		Accounts: make([]accountResponse, len(accounts)),
		Meta:     meta,
	}
	for i, a := range accounts {
		resp.Accounts[i] = toResponse(a)
	}

	return resp
}
