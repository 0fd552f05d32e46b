package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Amount      decimal.Decimal  `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	CategoryID  uuid.UUID        `json:"category"`
	AccountID   uuid.UUID        `json:"account"`
	ReceiptURL  string           `json:"receiptUrl,omitempty"`
	UserID      uuid.UUID        `json:"userId"`
	IsDeleted   bool             `json:"isDeleted"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

type singleResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Message     string              `json:"message,omitempty"`
}

type listResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	pagination.Meta
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Description: tx.Description,
		Date:        tx.Date,
		CategoryID:  tx.CategoryID,
		AccountID:   tx.AccountID,
		ReceiptURL:  tx.ReceiptURL,
		UserID:      tx.UserID,
		IsDeleted:   tx.Deleted(),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toListResponse(txs []*transaction.Transaction, meta pagination.Meta) listResponse {
	resp := listResponse{
		Transactions: make([]transactionResponse, len(txs)),
		Meta:         meta,
	}
	for i, tx := range txs {
		resp.Transactions[i] = toResponse(tx)
	}

	return resp
}
