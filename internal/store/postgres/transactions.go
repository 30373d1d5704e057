package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type TransactionStore struct {
	s *Store
}

const txColumns = "id, amount, currency, tx_type, COALESCE(reference, ''), account_id, user_id, created_at"

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.Amount, &t.Currency, &t.Type, &t.Reference,
		&t.AccountID, &t.UserID, &t.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

// Create inserts the transaction and moves the cached balance in one
// database transaction. The account row is locked first so the bound check
// and the update cannot interleave with a concurrent writer.
func (r *TransactionStore) Create(ctx context.Context, t *domain.Transaction) error {
	tx, err := r.s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		"SELECT balance FROM accounts WHERE id = $1 FOR UPDATE", t.AccountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		return fmt.Errorf("lock acquisition failed: %w", err)
	}

	delta := t.Amount
	if t.Type == domain.TransactionWithdrawal {
		delta = -delta
	}
	next := balance + delta
	if next < 0 {
		return store.ErrInsufficientFunds
	}
	if next > r.s.ceiling {
		return store.ErrCeilingExceeded
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, amount, currency, tx_type, reference, account_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`,
		t.ID, t.Amount, t.Currency, t.Type, t.Reference, t.AccountID, t.UserID, t.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE accounts SET balance = $2 WHERE id = $1", t.AccountID, next)
	if err != nil {
		return fmt.Errorf("balance update failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx commit failed: %w", err)
	}
	return nil
}

func (r *TransactionStore) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return scanTransaction(r.s.db.QueryRow(ctx,
		"SELECT "+txColumns+" FROM transactions WHERE id = $1", id))
}

func (r *TransactionStore) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	rows, err := r.s.db.Query(ctx,
		"SELECT "+txColumns+" FROM transactions WHERE account_id = $1 ORDER BY created_at", accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []*domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
