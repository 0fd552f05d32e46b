package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

// The deleted view must list exclusively deleted rows; the live view must
// list exclusively live rows. Each entity's List loader encodes that as the
// onlyDeleted query toggle, never includeDeleted.
func TestResourceLoaders_DeletedViewRequestsOnlyDeletedRows(t *testing.T) {
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts":[],"categories":[],"budgets":[],"transactions":[],"count":0,"page":1,"limit":10,"totalPages":0}`))
	}))
	defer srv.Close()

	api := client.New(srv.URL)

	loaders := map[string]func(ctx context.Context, deletedOnly bool, page, limit int) (int, pagination.Meta, error){
		"accounts": func(ctx context.Context, deletedOnly bool, page, limit int) (int, pagination.Meta, error) {
			items, meta, err := NewAccountsModel(api).cfg.List(ctx, deletedOnly, page, limit)
			return len(items), meta, err
		},
		"categories": func(ctx context.Context, deletedOnly bool, page, limit int) (int, pagination.Meta, error) {
			items, meta, err := NewCategoriesModel(api).cfg.List(ctx, deletedOnly, page, limit)
			return len(items), meta, err
		},
		"budgets": func(ctx context.Context, deletedOnly bool, page, limit int) (int, pagination.Meta, error) {
			items, meta, err := NewBudgetsModel(api).cfg.List(ctx, deletedOnly, page, limit)
			return len(items), meta, err
		},
		"transactions": func(ctx context.Context, deletedOnly bool, page, limit int) (int, pagination.Meta, error) {
			items, meta, err := NewTransactionsModel(api).cfg.List(ctx, deletedOnly, page, limit)
			return len(items), meta, err
		},
	}

	for name, load := range loaders {
		t.Run(name, func(t *testing.T) {
			_, _, err := load(context.Background(), true, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, "true", gotQuery.Get("onlyDeleted"))
			assert.Empty(t, gotQuery.Get("includeDeleted"))

			_, _, err = load(context.Background(), false, 1, 10)
			require.NoError(t, err)
			assert.Empty(t, gotQuery.Get("onlyDeleted"))
			assert.Empty(t, gotQuery.Get("includeDeleted"))
		})
	}
}
