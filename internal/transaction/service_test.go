package transaction_test

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

	"github.com/jorge-ld8/budget-tracking-sub001/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		check     func(t *testing.T, tx *transaction.Transaction)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				UserID:      userID,
				Amount:      decimal.NewFromInt(50),
				Type:        transaction.TypeExpense,
				Description: "Weekly groceries",
				Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
				CategoryID:  uuid.New(),
				AccountID:   uuid.New(),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			check: func(t *testing.T, tx *transaction.Transaction) {
				assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), tx.Date)
			},
		},
		{
			name: "TrimsDescription",
			params: transaction.CreateParams{
				UserID:      userID,
				Amount:      decimal.NewFromInt(12),
				Type:        transaction.TypeExpense,
				Description: "  coffee  ",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, tx *transaction.Transaction) {
				assert.Equal(t, "coffee", tx.Description)
			},
		},
		{
			name: "DateDefaultsToNow",
			params: transaction.CreateParams{
				UserID:      userID,
				Amount:      decimal.NewFromInt(5),
				Type:        transaction.TypeIncome,
				Description: "tip",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, tx *transaction.Transaction) {
				assert.WithinDuration(t, time.Now(), tx.Date, time.Minute)
			},
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				UserID: userID,
				Amount: decimal.NewFromInt(500),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := transaction.NewService(repo)

			got, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	expense := transaction.TypeExpense
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := transaction.ListFilter{
		UserID:    userID,
		Type:      &expense,
		StartDate: &start,
		Page:      2,
		Limit:     10,
	}

	txs := make([]*transaction.Transaction, 5)
	for i := range txs {
		txs[i] = &transaction.Transaction{ID: uuid.New(), UserID: userID}
	}

	repo.EXPECT().
		ListTransactions(gomock.Any(), filter).
		Return(txs, 15, nil)

	svc := transaction.NewService(repo)

	got, meta, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, 15, meta.Count)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestService_DeleteRestore_RoundTrip(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	now := time.Now()

	original := transaction.Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(50),
		Type:        transaction.TypeExpense,
		Description: "Weekly groceries",
		UserID:      userID,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	deletedCopy := original
	deletedCopy.DeletedAt = &now

	repo.EXPECT().
		SoftDeleteTransaction(gomock.Any(), id, userID).
		Return(&deletedCopy, nil)

	restoredCopy := original

	repo.EXPECT().
		RestoreTransaction(gomock.Any(), id, userID).
		Return(&restoredCopy, nil)

	svc := transaction.NewService(repo)

	deleted, err := svc.Delete(context.Background(), id, userID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())

	restored, err := svc.Restore(context.Background(), id, userID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted())

	// Restore brings back identical field values.
	assert.Equal(t, original.Description, restored.Description)
	assert.True(t, original.Amount.Equal(restored.Amount))
	assert.Equal(t, original.Type, restored.Type)
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		GetTransaction(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_Update_TrimsDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, "lunch", tx.Description)
			return nil
		})

	svc := transaction.NewService(repo)

	err := svc.Update(context.Background(), &transaction.Transaction{
		ID:          uuid.New(),
		Description: " lunch ",
	})
	require.NoError(t, err)
}
