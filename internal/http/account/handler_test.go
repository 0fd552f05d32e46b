package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
)

func newTestServer(t *testing.T, userID uuid.UUID) (*httptest.Server, *account.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := account.NewMockRepository(ctrl)
	handler := NewHandler(account.NewService(repo))

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(httpx.WithUserID(r.Context(), userID)))
		})
	})
	router.Route("/api/accounts", handler.Routes)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, repo
}

func TestCreate_DefaultsBalanceToZero(t *testing.T) {
	userID := uuid.New()
	srv, repo := newTestServer(t, userID)

	generated := uuid.New()

	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, a *account.Account) error {
			assert.Equal(t, userID, a.UserID)
			assert.True(t, a.Balance.Equal(decimal.Zero))

			a.ID = generated
			a.CreatedAt = time.Now()

			return nil
		})

	resp, err := http.Post(srv.URL+"/api/accounts", "application/json",
		strings.NewReader(`{"name":"main","type":"checking"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Account struct {
			ID        uuid.UUID       `json:"id"`
			Balance   decimal.Decimal `json:"balance"`
			IsDeleted bool            `json:"isDeleted"`
		} `json:"account"`
		Message string `json:"message"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, generated, body.Account.ID)
	assert.True(t, body.Account.Balance.Equal(decimal.Zero))
	assert.False(t, body.Account.IsDeleted)
	assert.Equal(t, "account created", body.Message)
}

func TestCreate_InvalidType(t *testing.T) {
	srv, _ := newTestServer(t, uuid.New())

	resp, err := http.Post(srv.URL+"/api/accounts", "application/json",
		strings.NewReader(`{"name":"main","type":"offshore"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreate_DuplicateName(t *testing.T) {
	srv, repo := newTestServer(t, uuid.New())

	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(account.ErrDuplicateName)

	resp, err := http.Post(srv.URL+"/api/accounts", "application/json",
		strings.NewReader(`{"name":"main","type":"checking"}`))
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, account.ErrDuplicateName.Error(), body.Message)
}

func TestGet_NotFound(t *testing.T) {
	srv, repo := newTestServer(t, uuid.New())

	repo.EXPECT().
		GetAccount(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(nil, account.ErrNotFound)

	resp, err := http.Get(srv.URL + "/api/accounts/" + uuid.NewString())
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestList_PassesFilterAndReturnsMeta(t *testing.T) {
	userID := uuid.New()
	srv, repo := newTestServer(t, userID)

	repo.EXPECT().
		ListAccounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter account.ListFilter) ([]*account.Account, int, error) {
			assert.Equal(t, userID, filter.UserID)
			assert.True(t, filter.IncludeDeleted)
			require.NotNil(t, filter.Type)
			assert.Equal(t, account.TypeSavings, *filter.Type)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 5, filter.Limit)

			return []*account.Account{{ID: uuid.New(), Name: "vacation", UserID: userID}}, 11, nil
		})

	resp, err := http.Get(srv.URL + "/api/accounts?type=savings&includeDeleted=true&page=2&limit=5")
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Accounts   []json.RawMessage `json:"accounts"`
		Count      int               `json:"count"`
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, 11, body.Count)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 5, body.Limit)
	assert.Equal(t, 3, body.TotalPages)
}

func TestList_OnlyDeletedReturnsJustDeletedRows(t *testing.T) {
	userID := uuid.New()
	srv, repo := newTestServer(t, userID)

	deletedAt := time.Now()

	repo.EXPECT().
		ListAccounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter account.ListFilter) ([]*account.Account, int, error) {
			assert.True(t, filter.OnlyDeleted)
			assert.False(t, filter.IncludeDeleted)

			return []*account.Account{
				{ID: uuid.New(), Name: "closed", UserID: userID, DeletedAt: &deletedAt},
			}, 1, nil
		})

	resp, err := http.Get(srv.URL + "/api/accounts?onlyDeleted=true")
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Accounts []struct {
			IsDeleted bool `json:"isDeleted"`
		} `json:"accounts"`
		Count int `json:"count"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.True(t, body.Accounts[0].IsDeleted)
	assert.Equal(t, 1, body.Count)
}

func TestRestore_ReturnsLiveAccount(t *testing.T) {
	userID := uuid.New()
	srv, repo := newTestServer(t, userID)

	id := uuid.New()

	repo.EXPECT().
		RestoreAccount(gomock.Any(), id, userID).
		Return(&account.Account{ID: id, Name: "main", UserID: userID}, nil)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/accounts/"+id.String()+"/restore", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Account struct {
			ID        uuid.UUID `json:"id"`
			IsDeleted bool      `json:"isDeleted"`
		} `json:"account"`
		Message string `json:"message"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body.Account.ID)
	assert.False(t, body.Account.IsDeleted)
	assert.Equal(t, "account restored", body.Message)
}

func TestDelete_NoContent(t *testing.T) {
	userID := uuid.New()
	srv, repo := newTestServer(t, userID)

	id := uuid.New()
	deletedAt := time.Now()

	repo.EXPECT().
		SoftDeleteAccount(gomock.Any(), id, userID).
		Return(&account.Account{ID: id, UserID: userID, DeletedAt: &deletedAt}, nil)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/accounts/"+id.String(), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
