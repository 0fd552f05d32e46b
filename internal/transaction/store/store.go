package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/transaction"
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

const selectTransactionColumns = `
	id, amount, type, description, date, category_id, account_id, receipt_url,
	user_id, created_at, updated_at, deleted_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	if err := s.Scan(
		&tx.ID, &tx.Amount, &typeStr, &tx.Description, &tx.Date,
		&tx.CategoryID, &tx.AccountID, &tx.ReceiptURL,
		&tx.UserID, &tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (amount, type, description, date, category_id, account_id, receipt_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.Date,
		tx.CategoryID,
		tx.AccountID,
		tx.ReceiptURL,
		tx.UserID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id, userID uuid.UUID, includeDeleted bool) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, int, error) {
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

	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.AccountID != nil {
		where += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	query := `SELECT ` + selectTransactionColumns + ` FROM transactions` + where +
		fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, pagination.Offset(filter.Page, filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, count, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, type = $2, description = $3, date = $4, category_id = $5,
			account_id = $6, receipt_url = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.Date,
		tx.CategoryID,
		tx.AccountID,
		tx.ReceiptURL,
		tx.ID,
		tx.UserID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return transaction.ErrNotFound
		}

		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

// SoftDeleteTransaction marks the transaction deleted. Deleting an
// already-deleted transaction leaves it deleted and still succeeds.
func (s *Store) SoftDeleteTransaction(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	query := `
		UPDATE transactions
		SET deleted_at = COALESCE(deleted_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectTransactionColumns

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("soft-deleting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) RestoreTransaction(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	query := `
		UPDATE transactions
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectTransactionColumns

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("restoring transaction: %w", err)
	}

	return tx, nil
}
