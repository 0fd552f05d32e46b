package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
)

func TestAuthenticator(t *testing.T) {
	const secret = "router-secret"

	userID := uuid.New()

	var gotUserID uuid.UUID

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httpx.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := authenticator(secret)(next)

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := auth.MakeJWT(userID, "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := auth.MakeJWT(userID, secret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotUserID)
	})
}
