package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type Category struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Icon      string     `json:"icon,omitempty"`
	Color     string     `json:"color,omitempty"`
	UserID    uuid.UUID  `json:"userId"`
	IsDeleted bool       `json:"isDeleted"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type CategoriesService struct {
	client *Client
}

// CategoryFilter carries only the deleted-view switches; categories have no
// other server-side filters. OnlyDeleted restricts the listing to
// soft-deleted categories.
type CategoryFilter struct {
	IncludeDeleted bool
	OnlyDeleted    bool
}

func (f CategoryFilter) queryParams() url.Values {
	q := url.Values{}

	if f.IncludeDeleted {
		q.Set("includeDeleted", "true")
	}

	if f.OnlyDeleted {
		q.Set("onlyDeleted", "true")
	}

	return q
}

type CreateCategoryParams struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

type UpdateCategoryParams struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

type categoryEnvelope struct {
	Category Category `json:"category"`
}

type categoryListEnvelope struct {
	Categories []Category `json:"categories"`
	pagination.Meta
}

func (s *CategoriesService) List(ctx context.Context, filter CategoryFilter, page, limit int) ([]Category, pagination.Meta, error) {
	q := pageQuery(filter.queryParams(), page, limit)

	env, err := do[categoryListEnvelope](ctx, s.client, http.MethodGet, "/api/categories", q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return env.Categories, env.Meta, nil
}

func (s *CategoriesService) Get(ctx context.Context, id uuid.UUID) (Category, error) {
	env, err := do[categoryEnvelope](ctx, s.client, http.MethodGet, "/api/categories/"+id.String(), nil, nil)

	return env.Category, err
}

func (s *CategoriesService) Create(ctx context.Context, params CreateCategoryParams) (Category, error) {
	env, err := do[categoryEnvelope](ctx, s.client, http.MethodPost, "/api/categories", nil, params)

	return env.Category, err
}

func (s *CategoriesService) Update(ctx context.Context, id uuid.UUID, params UpdateCategoryParams) (Category, error) {
	env, err := do[categoryEnvelope](ctx, s.client, http.MethodPut, "/api/categories/"+id.String(), nil, params)

	return env.Category, err
}

func (s *CategoriesService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/api/categories/"+id.String(), nil, nil)

	return err
}

func (s *CategoriesService) Restore(ctx context.Context, id uuid.UUID) (Category, error) {
	env, err := do[categoryEnvelope](ctx, s.client, http.MethodPatch, "/api/categories/"+id.String()+"/restore", nil, nil)

	return env.Category, err
}
