package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/restore", h.restore)
}

type createTransactionRequest struct {
	Amount      decimal.Decimal  `json:"amount" validate:"required"`
	Type        transaction.Type `json:"type" validate:"required,oneof=income expense"`
	Description string           `json:"description" validate:"required"`
	Date        *time.Time       `json:"date,omitempty"`
	CategoryID  uuid.UUID        `json:"category" validate:"required"`
	AccountID   uuid.UUID        `json:"account" validate:"required"`
	ReceiptURL  string           `json:"receiptUrl,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[createTransactionRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.Amount.IsPositive() {
		httpx.Error(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		UserID:      httpx.UserID(r.Context()),
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, singleResponse{Transaction: toResponse(tx), Message: "transaction created"})
}

func (h *Handler) listFilter(r *http.Request) (transaction.ListFilter, error) {
	filter := transaction.ListFilter{
		UserID:         httpx.UserID(r.Context()),
		IncludeDeleted: httpx.IncludeDeleted(r),
		OnlyDeleted:    httpx.OnlyDeleted(r),
	}
	filter.Page, filter.Limit = httpx.Pagination(r)

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(transaction.Type(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid category")
		}

		filter.CategoryID = &id
	}

	if s := r.URL.Query().Get("account"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid account")
		}

		filter.AccountID = &id
	}

	var err error

	if filter.StartDate, err = httpx.QueryDate(r, "startDate"); err != nil {
		return filter, err
	}

	if filter.EndDate, err = httpx.QueryDate(r, "endDate"); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := h.listFilter(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, meta, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(txs, meta))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Transaction: toResponse(tx)})
}

type updateTransactionRequest struct {
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
	Type        *transaction.Type `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Description *string           `json:"description,omitempty"`
	Date        *time.Time        `json:"date,omitempty"`
	CategoryID  *uuid.UUID        `json:"category,omitempty"`
	AccountID   *uuid.UUID        `json:"account,omitempty"`
	ReceiptURL  *string           `json:"receiptUrl,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := httpx.DecodeValid[updateTransactionRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			httpx.Error(w, http.StatusBadRequest, "amount must be positive")
			return
		}

		tx.Amount = *req.Amount
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.CategoryID != nil {
		tx.CategoryID = *req.CategoryID
	}

	if req.AccountID != nil {
		tx.AccountID = *req.AccountID
	}

	if req.ReceiptURL != nil {
		tx.ReceiptURL = *req.ReceiptURL
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Transaction: toResponse(tx)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Delete(r.Context(), id, httpx.UserID(r.Context())); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.svc.Restore(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Transaction: toResponse(tx), Message: "transaction restored"})
}
