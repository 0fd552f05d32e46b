package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			u.CreatedAt = time.Now()
			return nil
		})

	svc := user.NewService(repo)

	got, err := svc.Register(context.Background(), user.RegisterParams{
		Username:  "jane",
		Email:     "jane@example.com",
		Password:  "hunter2!",
		FirstName: "Jane",
		LastName:  "Doe",
		Currency:  user.CurrencyEUR,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, user.CurrencyEUR, got.Currency)

	// Plaintext never stored; stored hash verifies.
	assert.NotEqual(t, "hunter2!", got.PasswordHash)
	assert.True(t, auth.CheckPassword("hunter2!", got.PasswordHash))
}

func TestService_Register_DefaultsCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := user.NewService(repo)

	got, err := svc.Register(context.Background(), user.RegisterParams{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "hunter2!",
	})
	require.NoError(t, err)
	assert.Equal(t, user.CurrencyUSD, got.Currency)
}

func TestService_Register_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(user.ErrDuplicate)

	svc := user.NewService(repo)

	_, err := svc.Register(context.Background(), user.RegisterParams{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "hunter2!",
	})
	assert.ErrorIs(t, err, user.ErrDuplicate)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)

	stored := &user.User{ID: uuid.New(), Username: "jane", PasswordHash: hash}

	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "jane",
			password: "hunter2!",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "jane").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			username: "jane",
			password: "wrong",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "jane").
					Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownUser",
			username: "nobody",
			password: "hunter2!",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByUsername(gomock.Any(), "nobody").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)

			got, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}

func TestService_Update_RehashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.True(t, auth.CheckPassword("new-secret", u.PasswordHash))
			return nil
		})

	svc := user.NewService(repo)

	u := &user.User{ID: uuid.New(), Username: "jane", PasswordHash: "old"}

	require.NoError(t, svc.Update(context.Background(), u, "new-secret"))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		ListUsers(gomock.Any(), user.ListFilter{Page: 1, Limit: 10}).
		Return([]*user.User{{ID: uuid.New()}}, 1, nil)

	svc := user.NewService(repo)

	users, meta, err := svc.List(context.Background(), user.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 1, meta.TotalPages)
}
