package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/budget"
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

const selectBudgetColumns = `
	id, amount, period, category_id, start_date, end_date, is_recurring, user_id,
	created_at, updated_at, deleted_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	var periodStr string

	if err := s.Scan(
		&b.ID, &b.Amount, &periodStr, &b.CategoryID, &b.StartDate, &b.EndDate,
		&b.IsRecurring, &b.UserID, &b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	); err != nil {
		return nil, err
	}

	b.Period = budget.Period(periodStr)

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (amount, period, category_id, start_date, end_date, is_recurring, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.Amount,
		b.Period,
		b.CategoryID,
		b.StartDate,
		b.EndDate,
		b.IsRecurring,
		b.UserID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE id = $1 AND user_id = $2`

	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context, filter budget.ListFilter) ([]*budget.Budget, int, error) {
	where := " WHERE user_id = $1"

	args := []any{filter.UserID}

	argIdx := 2

	if filter.OnlyDeleted {
		where += " AND deleted_at IS NOT NULL"
	} else if !filter.IncludeDeleted {
		where += " AND deleted_at IS NULL"
	}

	if filter.Period != nil {
		where += fmt.Sprintf(" AND period = $%d", argIdx)

		args = append(args, *filter.Period)
		argIdx++
	}

	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND start_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND start_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM budgets"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting budgets: %w", err)
	}

	query := `SELECT ` + selectBudgetColumns + ` FROM budgets` + where +
		fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, pagination.Offset(filter.Page, filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, count, nil
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET amount = $1, period = $2, category_id = $3, start_date = $4, end_date = $5,
			is_recurring = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.Amount,
		b.Period,
		b.CategoryID,
		b.StartDate,
		b.EndDate,
		b.IsRecurring,
		b.ID,
		b.UserID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return budget.ErrNotFound
		}

		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (s *Store) SoftDeleteBudget(ctx context.Context, id, userID uuid.UUID) (*budget.Budget, error) {
	query := `
		UPDATE budgets
		SET deleted_at = COALESCE(deleted_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectBudgetColumns

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("soft-deleting budget: %w", err)
	}

	return b, nil
}

func (s *Store) RestoreBudget(ctx context.Context, id, userID uuid.UUID) (*budget.Budget, error) {
	query := `
		UPDATE budgets
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectBudgetColumns

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("restoring budget: %w", err)
	}

	return b, nil
}
