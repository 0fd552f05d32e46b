package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/database"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
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

const selectUserColumns = `
	id, username, email, password_hash, first_name, last_name, currency, is_admin,
	created_at, updated_at, deleted_at
`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var currencyStr string

	if err := s.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&currencyStr, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	); err != nil {
		return nil, err
	}

	u.Currency = user.Currency(currencyStr)

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Currency,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrDuplicate
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + `
		FROM users
		WHERE username = $1 AND deleted_at IS NULL`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by username: %w", err)
	}

	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, first_name = $4,
			last_name = $5, currency = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Currency,
		u.ID,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return user.ErrDuplicate
		}

		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func (s *Store) ListUsers(ctx context.Context, filter user.ListFilter) ([]*user.User, int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE deleted_at IS NULL").Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	query := `SELECT ` + selectUserColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY username ASC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, filter.Limit, pagination.Offset(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, count, nil
}
