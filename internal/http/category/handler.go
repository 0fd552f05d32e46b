package category

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/category"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
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

type createCategoryRequest struct {
	Name  string        `json:"name" validate:"required"`
	Type  category.Type `json:"type" validate:"required,oneof=income expense"`
	Icon  string        `json:"icon"`
	Color string        `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[createCategoryRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateParams{
		UserID: httpx.UserID(r.Context()),
		Name:   req.Name,
		Type:   req.Type,
		Icon:   req.Icon,
		Color:  req.Color,
	})
	if err != nil {
		if errors.Is(err, category.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusCreated, singleResponse{Category: toResponse(c), Message: "category created"})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := category.ListFilter{
		UserID:         httpx.UserID(r.Context()),
		IncludeDeleted: httpx.IncludeDeleted(r),
		OnlyDeleted:    httpx.OnlyDeleted(r),
	}
	filter.Page, filter.Limit = httpx.Pagination(r)

	categories, meta, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(categories, meta))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Category: toResponse(c)})
}

type updateCategoryRequest struct {
	Name  *string        `json:"name,omitempty"`
	Type  *category.Type `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Icon  *string        `json:"icon,omitempty"`
	Color *string        `json:"color,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := httpx.DecodeValid[updateCategoryRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Get(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Type != nil {
		c.Type = *req.Type
	}

	if req.Icon != nil {
		c.Icon = *req.Icon
	}

	if req.Color != nil {
		c.Color = *req.Color
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		if errors.Is(err, category.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		if errors.Is(err, category.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Category: toResponse(c)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Delete(r.Context(), id, httpx.UserID(r.Context())); err != nil {
		if errors.Is(err, category.ErrNotFound) {
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

	c, err := h.svc.Restore(r.Context(), id, httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		if errors.Is(err, category.ErrDuplicateName) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{Category: toResponse(c), Message: "category restored"})
}
