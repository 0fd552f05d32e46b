package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, userID uuid.UUID) (*httptest.Server, *user.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	handler := NewHandler(user.NewService(repo), testSecret, time.Hour)

	router := chi.NewRouter()
	router.Route("/api/users", func(r chi.Router) {
		handler.PublicRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(httpx.WithUserID(req.Context(), userID)))
				})
			})
			handler.Routes(r)
		})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, repo
}

func TestLogin_ReturnsTokenAndOmitsPasswordHash(t *testing.T) {
	srv, repo := newTestServer(t, uuid.Nil)

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	id := uuid.New()

	repo.EXPECT().
		GetUserByUsername(gomock.Any(), "jorge").
		Return(&user.User{ID: id, Username: "jorge", PasswordHash: hash, Currency: user.CurrencyUSD}, nil)

	resp, err := http.Post(srv.URL+"/api/users/login", "application/json",
		strings.NewReader(`{"username":"jorge","password":"correct horse"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Contains(t, raw, "token")
	require.Contains(t, raw, "user")
	assert.NotContains(t, string(raw["user"]), "assword")

	var token string

	require.NoError(t, json.Unmarshal(raw["token"], &token))

	gotID, err := auth.ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, repo := newTestServer(t, uuid.Nil)

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	repo.EXPECT().
		GetUserByUsername(gomock.Any(), "jorge").
		Return(&user.User{ID: uuid.New(), Username: "jorge", PasswordHash: hash}, nil)

	resp, err := http.Post(srv.URL+"/api/users/login", "application/json",
		strings.NewReader(`{"username":"jorge","password":"battery staple"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_InvalidEmail(t *testing.T) {
	srv, _ := newTestServer(t, uuid.Nil)

	resp, err := http.Post(srv.URL+"/api/users/register", "application/json",
		strings.NewReader(`{"username":"jorge","email":"not-an-email","password":"secret123"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestList_NonAdminForbidden(t *testing.T) {
	callerID := uuid.New()
	srv, repo := newTestServer(t, callerID)

	repo.EXPECT().
		GetUser(gomock.Any(), callerID).
		Return(&user.User{ID: callerID, Username: "jorge", IsAdmin: false}, nil)

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestList_UnknownCallerUnauthorized(t *testing.T) {
	callerID := uuid.New()
	srv, repo := newTestServer(t, callerID)

	repo.EXPECT().
		GetUser(gomock.Any(), callerID).
		Return(nil, user.ErrNotFound)

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestList_AdminGetsPaginatedUsers(t *testing.T) {
	callerID := uuid.New()
	srv, repo := newTestServer(t, callerID)

	repo.EXPECT().
		GetUser(gomock.Any(), callerID).
		Return(&user.User{ID: callerID, Username: "root", IsAdmin: true}, nil)

	repo.EXPECT().
		ListUsers(gomock.Any(), user.ListFilter{Page: 1, Limit: 10}).
		Return([]*user.User{
			{ID: uuid.New(), Username: "alice"},
			{ID: uuid.New(), Username: "bob"},
		}, 2, nil)

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
		Count      int `json:"count"`
		TotalPages int `json:"totalPages"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 1, body.TotalPages)
}
