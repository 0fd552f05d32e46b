package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/category"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/database"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCategoryColumns = `
	id, name, type, icon, color, user_id, created_at, updated_at, deleted_at
`

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr string

	if err := s.Scan(
		&c.ID, &c.Name, &typeStr, &c.Icon, &c.Color, &c.UserID,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, icon, color, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Type,
		c.Icon,
		c.Color,
		c.UserID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return category.ErrDuplicateName
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE id = $1 AND user_id = $2`

	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, filter category.ListFilter) ([]*category.Category, int, error) {
	where := " WHERE user_id = $1"

	args := []any{filter.UserID}

	if filter.OnlyDeleted {
		where += " AND deleted_at IS NOT NULL"
	} else if !filter.IncludeDeleted {
		where += " AND deleted_at IS NULL"
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting categories: %w", err)
	}

	query := `SELECT ` + selectCategoryColumns + ` FROM categories` + where +
		" ORDER BY name ASC LIMIT $2 OFFSET $3"
	args = append(args, filter.Limit, pagination.Offset(filter.Page, filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, count, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, icon = $3, color = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Type,
		c.Icon,
		c.Color,
		c.ID,
		c.UserID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return category.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return category.ErrDuplicateName
		}

		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) SoftDeleteCategory(ctx context.Context, id, userID uuid.UUID) (*category.Category, error) {
	query := `
		UPDATE categories
		SET deleted_at = COALESCE(deleted_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectCategoryColumns

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("soft-deleting category: %w", err)
	}

	return c, nil
}

func (s *Store) RestoreCategory(ctx context.Context, id, userID uuid.UUID) (*category.Category, error) {
	query := `
		UPDATE categories
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectCategoryColumns

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return nil, category.ErrDuplicateName
		}

		return nil, fmt.Errorf("restoring category: %w", err)
	}

	return c, nil
}
