package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
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

type createAccountRequest struct {
	Name        string           `json:"name" validate:"required"`
	Type        account.Type     `json:"type" validate:"required,oneof=checking savings credit investment cash other"`
	Balance     *decimal.Decimal `json:"balance"`
	Description string           `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[createAccountRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		UserID:      httpx.UserID(r.Context()),
		Name:        req.Name,
		Type:        req.Type,
		Balance:     balance,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, account.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusCreated, singleResponse{Account: toResponse(a), Message: "account created"})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := account.ListFilter{
		UserID:         httpx.UserID(r.Context()),
		IncludeDeleted: httpx.IncludeDeleted(r),
		OnlyDeleted:    httpx.OnlyDeleted(r),
	}
	filter.Page, filter.Limit = httpx.Pagination(r)

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(account.Type(s))
	}

	if s := r.URL.Query().Get("name"); s != "" {
		filter.Name = new(s)
	}

	accounts, meta, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(accounts, meta))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Account: toResponse(a)})
}

type updateAccountRequest struct {
	Name        *string          `json:"name,omitempty"`
	Type        *account.Type    `json:"type,omitempty" validate:"omitempty,oneof=checking savings credit investment cash other"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := httpx.DecodeValid[updateAccountRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}

	if req.Type != nil {
		a.Type = *req.Type
	}

	if req.Balance != nil {
		a.Balance = *req.Balance
	}

	if req.Description != nil {
		a.Description = *req.Description
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		if errors.Is(err, account.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		if errors.Is(err, account.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Account: toResponse(a)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Delete(r.Context(), id, httpx.UserID(r.Context())); err != nil {
		if errors.Is(err, account.ErrNotFound) {
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

	a, err := h.svc.Restore(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		if errors.Is(err, account.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Account: toResponse(a), Message: "account restored"})
}
