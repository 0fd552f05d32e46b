package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/database"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, name, type, balance, description, user_id, created_at, updated_at, deleted_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr string

	if err := s.Scan(
		&a.ID, &a.Name, &typeStr, &a.Balance, &a.Description, &a.UserID,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (name, type, balance, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name,
		a.Type,
		a.Balance,
		a.Description,
		a.UserID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return account.ErrDuplicateName
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE id = $1 AND user_id = $2`

	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, int, error) {
	where := " WHERE user_id = $1"

	args := []any{filter.UserID}

	argIdx := 2

	if filter.OnlyDeleted {
		where += " AND deleted_at IS NOT NULL"
	} else if !filter.IncludeDeleted {
		where += " AND deleted_at IS NULL"
	}

	if filter.Type != nil {
		where += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Name != nil {
		where += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, *filter.Name)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting accounts: %w", err)
	}

	query := `SELECT ` + selectAccountColumns + ` FROM accounts` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, pagination.Offset(filter.Page, filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, count, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, balance = $3, description = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name,
		a.Type,
		a.Balance,
		a.Description,
		a.ID,
		a.UserID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return account.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return account.ErrDuplicateName
		}

		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

// SoftDeleteAccount marks the account deleted. Deleting an already-deleted
// account leaves it deleted and still succeeds.
func (s *Store) SoftDeleteAccount(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	query := `
		UPDATE accounts
		SET deleted_at = COALESCE(deleted_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectAccountColumns

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("soft-deleting account: %w", err)
	}

	return a, nil
}

func (s *Store) RestoreAccount(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	query := `
		UPDATE accounts
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectAccountColumns

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return nil, account.ErrDuplicateName
		}

		return nil, fmt.Errorf("restoring account: %w", err)
	}

	return a, nil
}
