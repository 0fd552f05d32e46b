package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/category"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: category.CreateParams{
				UserID: userID,
				Name:   "Groceries",
				Type:   category.TypeExpense,
				Icon:   "cart",
				Color:  "#22c55e",
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "DuplicateNameAndType",
			params: category.CreateParams{
				UserID: userID,
				Name:   "Groceries",
				Type:   category.TypeExpense,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(category.ErrDuplicateName)
			},
			wantErr: category.ErrDuplicateName,
		},
		{
			// Same name under the other type is a distinct category.
			name: "SameNameOtherType",
			params: category.CreateParams{
				UserID: userID,
				Name:   "Groceries",
				Type:   category.TypeIncome,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := category.NewService(repo)

			got, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Type, got.Type)
		})
	}
}

func TestService_List_IncludeDeleted(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := category.NewMockRepository(ctrl)

	filter := category.ListFilter{UserID: userID, IncludeDeleted: true, Page: 1, Limit: 10}

	repo.EXPECT().
		ListCategories(gomock.Any(), filter).
		Return([]*category.Category{
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID, DeletedAt: &now},
		}, 2, nil)

	svc := category.NewService(repo)

	categories, meta, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.False(t, categories[0].Deleted())
	assert.True(t, categories[1].Deleted())
	assert.Equal(t, 1, meta.TotalPages)
}
