package category

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateName = errors.New("a category with this name and type already exists")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*Category, error)
	ListCategories(ctx context.Context, filter ListFilter) ([]*Category, int, error)
	UpdateCategory(ctx context.Context, c *Category) error
	SoftDeleteCategory(ctx context.Context, id, userID uuid.UUID) (*Category, error)
	RestoreCategory(ctx context.Context, id, userID uuid.UUID) (*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID uuid.UUID
	Name   string
	Type   Type
	Icon   string
	Color  string
}

// ListFilter pages a listing. Categories expose no query filters beyond
// pagination and the deleted toggles; OnlyDeleted restricts the listing to
// deleted rows and takes precedence over IncludeDeleted.
type ListFilter struct {
	UserID         uuid.UUID
	IncludeDeleted bool
	OnlyDeleted    bool
	Page           int
	Limit          int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	c := &Category{
		Name:   params.Name,
		Type:   params.Type,
		Icon:   params.Icon,
		Color:  params.Color,
		UserID: params.UserID,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id, userID, false)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Category, pagination.Meta, error) {
	filter.Page, filter.Limit = pagination.Normalize(filter.Page, filter.Limit)

	categories, count, err := s.repo.ListCategories(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return categories, pagination.NewMeta(count, filter.Page, filter.Limit), nil
}

func (s *Service) Update(ctx context.Context, c *Category) error {
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	return s.repo.SoftDeleteCategory(ctx, id, userID)
}

func (s *Service) Restore(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	return s.repo.RestoreCategory(ctx, id, userID)
}
