package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/budget"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *budget.Budget) error {
			b.ID = uuid.New()
			b.CreatedAt = time.Now()
			return nil
		})

	svc := budget.NewService(repo)

	got, err := svc.Create(context.Background(), budget.CreateParams{
		UserID:      userID,
		Amount:      decimal.NewFromInt(500),
		Period:      budget.PeriodMonthly,
		CategoryID:  categoryID,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, categoryID, got.CategoryID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.IsRecurring)
	assert.Nil(t, got.EndDate)
}

func TestService_ListByPeriod(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)

	monthly := budget.PeriodMonthly

	repo.EXPECT().
		ListBudgets(gomock.Any(), budget.ListFilter{
			UserID: userID,
			Period: &monthly,
			Page:   1,
			Limit:  10,
		}).
		Return([]*budget.Budget{
			{ID: uuid.New(), Period: budget.PeriodMonthly, UserID: userID},
		}, 1, nil)

	svc := budget.NewService(repo)

	budgets, meta, err := svc.ListByPeriod(context.Background(), userID, budget.PeriodMonthly, 1, 10)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, budget.PeriodMonthly, budgets[0].Period)
	assert.Equal(t, 1, meta.Count)
}

func TestService_DeleteRestore(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	now := time.Now()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)

	repo.EXPECT().
		SoftDeleteBudget(gomock.Any(), id, userID).
		Return(&budget.Budget{ID: id, DeletedAt: &now}, nil)
	repo.EXPECT().
		RestoreBudget(gomock.Any(), id, userID).
		Return(&budget.Budget{ID: id}, nil)

	svc := budget.NewService(repo)

	deleted, err := svc.Delete(context.Background(), id, userID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())

	restored, err := svc.Restore(context.Background(), id, userID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted())
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)

	repo.EXPECT().
		GetBudget(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(nil, budget.ErrNotFound)

	svc := budget.NewService(repo)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, budget.ErrNotFound)
}
