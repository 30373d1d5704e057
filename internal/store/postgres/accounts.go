package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type AccountStore struct {
	s *Store
}

const accountColumns = "id, account_number, sort_code, name, account_type, balance, currency, user_id, created_at, updated_at"

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Number, &a.SortCode, &a.Name, &a.Type, &a.Balance,
		&a.Currency, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *AccountStore) Create(ctx context.Context, a *domain.Account) error {
	_, err := r.s.db.Exec(ctx,
		`INSERT INTO accounts (id, account_number, sort_code, name, account_type, balance, currency, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.Number, a.SortCode, a.Name, a.Type, a.Balance, a.Currency, a.UserID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *AccountStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return scanAccount(r.s.db.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = $1", id))
}

func (r *AccountStore) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return scanAccount(r.s.db.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE account_number = $1", number))
}

func (r *AccountStore) ListByUser(ctx context.Context, userID string) ([]*domain.Account, error) {
	rows, err := r.s.db.Query(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Update rewrites the owner-mutable columns. Balance, number, sort code and
// owner are deliberately absent from the statement.
func (r *AccountStore) Update(ctx context.Context, a *domain.Account) error {
	tag, err := r.s.db.Exec(ctx,
		`UPDATE accounts SET name = $2, account_type = $3, currency = $4, updated_at = $5
		 WHERE id = $1`,
		a.ID, a.Name, a.Type, a.Currency, a.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *AccountStore) Delete(ctx context.Context, id string) error {
	tag, err := r.s.db.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
