package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: account.CreateParams{
				UserID: userID,
				Name:   "Checking",
				Type:   account.TypeChecking,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *account.Account) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "DuplicateName",
			params: account.CreateParams{
				UserID: userID,
				Name:   "Checking",
				Type:   account.TypeChecking,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(account.ErrDuplicateName)
			},
			wantErr: account.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := account.NewService(repo)

			got, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Name, got.Name)
			assert.True(t, got.Balance.IsZero())
			assert.False(t, got.Deleted())
		})
	}
}

func TestService_List(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)

	accType := account.TypeSavings
	filter := account.ListFilter{UserID: userID, Type: &accType, Page: 2, Limit: 10}

	repo.EXPECT().
		ListAccounts(gomock.Any(), filter).
		Return([]*account.Account{
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
		}, 15, nil)

	svc := account.NewService(repo)

	accounts, meta, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, accounts, 5)
	assert.Equal(t, 15, meta.Count)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestService_List_NormalizesPaging(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)

	repo.EXPECT().
		ListAccounts(gomock.Any(), account.ListFilter{UserID: userID, Page: 1, Limit: 10}).
		Return(nil, 0, nil)

	svc := account.NewService(repo)

	_, meta, err := svc.List(context.Background(), account.ListFilter{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestService_Get(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)

	repo.EXPECT().
		GetAccount(gomock.Any(), id, userID, false).
		Return(nil, account.ErrNotFound)

	svc := account.NewService(repo)

	_, err := svc.Get(context.Background(), id, userID)
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestService_DeleteRestore(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	now := time.Now()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)

	repo.EXPECT().
		SoftDeleteAccount(gomock.Any(), id, userID).
		Return(&account.Account{ID: id, UserID: userID, DeletedAt: &now}, nil)
	repo.EXPECT().
		RestoreAccount(gomock.Any(), id, userID).
		Return(&account.Account{ID: id, UserID: userID}, nil)

	svc := account.NewService(repo)

	deleted, err := svc.Delete(context.Background(), id, userID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())

	restored, err := svc.Restore(context.Background(), id, userID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted())
}

func TestService_Update_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)

	repo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))

	svc := account.NewService(repo)

	err := svc.Update(context.Background(), &account.Account{
		ID:      uuid.New(),
		Balance: decimal.NewFromInt(10),
	})
	assert.Error(t, err)
}
