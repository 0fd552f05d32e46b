// Package httpx holds the request/response plumbing shared by every
// resource handler: the JSON error envelope, payload decoding with
// validation, and query parsing for pagination and the deleted toggle.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Message string `json:"message"`
}

// JSON writes payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes the error envelope every failure shares.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Message: message})
}

// Internal logs err and writes a generic 500. The underlying error is never
// sent to the client.
func Internal(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	Error(w, http.StatusInternalServerError, "internal server error")
}

// DecodeValid decodes a JSON body into T and runs struct validation.
func DecodeValid[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return v, fmt.Errorf("field %q failed %q validation", fe.Field(), fe.Tag())
		}

		return v, err
	}

	return v, nil
}

// ParseID reads the {id} path parameter.
func ParseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}

	return id, nil
}

// Pagination reads page and limit query parameters. Missing or malformed
// values fall back to zero; services normalize from there.
func Pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	return page, limit
}

// IncludeDeleted reads the includeDeleted query toggle.
func IncludeDeleted(r *http.Request) bool {
	return r.URL.Query().Get("includeDeleted") == "true"
}

// OnlyDeleted reads the onlyDeleted query toggle, which restricts a listing
// to soft-deleted rows.
func OnlyDeleted(r *http.Request) bool {
	return r.URL.Query().Get("onlyDeleted") == "true"
}

// QueryDate parses an optional date query parameter (YYYY-MM-DD).
func QueryDate(r *http.Request, key string) (*time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected YYYY-MM-DD", key)
	}

	return &t, nil
}

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID stashes the authenticated user's ID on the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user's ID, or uuid.Nil outside an
// authenticated request.
func UserID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)

	return id
}
