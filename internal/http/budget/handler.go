package budget

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/budget"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/period/{period}", h.listByPeriod)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/restore", h.restore)
}

type createBudgetRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Period      budget.Period   `json:"period" validate:"required,oneof=daily weekly monthly yearly"`
	CategoryID  uuid.UUID       `json:"category" validate:"required"`
	StartDate   string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string          `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring *bool           `json:"isRecurring,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[createBudgetRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.Amount.IsPositive() {
		httpx.Error(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	startDate, _ := time.Parse(time.DateOnly, req.StartDate)

	var endDate *time.Time

	if req.EndDate != "" {
		t, _ := time.Parse(time.DateOnly, req.EndDate)
		if !t.After(startDate) {
			httpx.Error(w, http.StatusBadRequest, "endDate must be after startDate")
			return
		}

		endDate = &t
	}

	isRecurring := true
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	b, err := h.svc.Create(r.Context(), budget.CreateParams{
		UserID:      httpx.UserID(r.Context()),
		Amount:      req.Amount,
		Period:      req.Period,
		CategoryID:  req.CategoryID,
		StartDate:   startDate,
		EndDate:     endDate,
		IsRecurring: isRecurring,
	})
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, singleResponse{Budget: toResponse(b), Message: "budget created"})
}

func (h *Handler) listFilter(r *http.Request) (budget.ListFilter, error) {
	filter := budget.ListFilter{
		UserID:         httpx.UserID(r.Context()),
		IncludeDeleted: httpx.IncludeDeleted(r),
		OnlyDeleted:    httpx.OnlyDeleted(r),
	}
	filter.Page, filter.Limit = httpx.Pagination(r)

	if s := r.URL.Query().Get("period"); s != "" {
		filter.Period = new(budget.Period(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid category")
		}

		filter.CategoryID = &id
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

	budgets, meta, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(budgets, meta))
}

func (h *Handler) listByPeriod(w http.ResponseWriter, r *http.Request) {
	period := budget.Period(chi.URLParam(r, "period"))

	switch period {
	case budget.PeriodDaily, budget.PeriodWeekly, budget.PeriodMonthly, budget.PeriodYearly:
	default:
		httpx.Error(w, http.StatusBadRequest, "invalid period")
		return
	}

	page, limit := httpx.Pagination(r)

	budgets, meta, err := h.svc.ListByPeriod(r.Context(), httpx.UserID(r.Context()), period, page, limit)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(budgets, meta))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Budget: toResponse(b)})
}

type updateBudgetRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Period      *budget.Period   `json:"period,omitempty" validate:"omitempty,oneof=daily weekly monthly yearly"`
	CategoryID  *uuid.UUID       `json:"category,omitempty"`
	StartDate   *string          `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring *bool            `json:"isRecurring,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := httpx.DecodeValid[updateBudgetRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
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

		b.Amount = *req.Amount
	}

	if req.Period != nil {
		b.Period = *req.Period
	}

	if req.CategoryID != nil {
		b.CategoryID = *req.CategoryID
	}

	if req.StartDate != nil {
		t, _ := time.Parse(time.DateOnly, *req.StartDate)
		b.StartDate = t
	}

	if req.EndDate != nil {
		if *req.EndDate == "" {
			b.EndDate = nil
		} else {
			t, _ := time.Parse(time.DateOnly, *req.EndDate)
			b.EndDate = &t
		}
	}

	if b.EndDate != nil && !b.EndDate.After(b.StartDate) {
		httpx.Error(w, http.StatusBadRequest, "endDate must be after startDate")
		return
	}

	if req.IsRecurring != nil {
		b.IsRecurring = *req.IsRecurring
	}

	if err := h.svc.Update(r.Context(), b); err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Budget: toResponse(b)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Delete(r.Context(), id, httpx.UserID(r.Context())); err != nil {
		if errors.Is(err, budget.ErrNotFound) {
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

	b, err := h.svc.Restore(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Budget: toResponse(b), Message: "budget restored"})
}
