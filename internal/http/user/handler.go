package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
)

type Handler struct {
	svc       *user.Service
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(svc *user.Service, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{svc: svc, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// PublicRoutes are mounted outside the auth middleware.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/me", h.me)
	r.Put("/me", h.updateMe)
}

type registerRequest struct {
	Username  string        `json:"username" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Password  string        `json:"password" validate:"required,min=8"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Currency  user.Currency `json:"currency" validate:"omitempty,oneof=USD EUR GBP JPY CAD AUD CHF INR"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[registerRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Currency:  req.Currency,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusCreated, singleResponse{User: toResponse(u), Message: "user registered"})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[loginRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	token, err := auth.MakeJWT(u.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{User: toResponse(u), Token: token})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{User: toResponse(u)})
}

type updateMeRequest struct {
	Email     *string        `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string        `json:"password,omitempty" validate:"omitempty,min=8"`
	FirstName *string        `json:"firstName,omitempty"`
	LastName  *string        `json:"lastName,omitempty"`
	Currency  *user.Currency `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP JPY CAD AUD CHF INR"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.DecodeValid[updateMeRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Get(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	if req.Email != nil {
		u.Email = *req.Email
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}

	if req.LastName != nil {
		u.LastName = *req.LastName
	}

	if req.Currency != nil {
		u.Currency = *req.Currency
	}

	var newPassword string
	if req.Password != nil {
		newPassword = *req.Password
	}

	if err := h.svc.Update(r.Context(), u, newPassword); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.Internal(w, err)

		return
	}

	httpx.JSON(w, http.StatusOK, singleResponse{User: toResponse(u), Message: "profile updated"})
}

// list is restricted to admin users.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller, err := h.svc.Get(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		// A valid token for a user that no longer exists is an auth
		// failure, not a server error.
		if errors.Is(err, user.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "unknown user")
			return
		}

		httpx.Internal(w, err)

		return
	}

	if !caller.IsAdmin {
		httpx.Error(w, http.StatusForbidden, "admin access required")
		return
	}

	var filter user.ListFilter

	filter.Page, filter.Limit = httpx.Pagination(r)

	users, meta, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpx.Internal(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(users, meta))
}
