// Package postgres implements the store interfaces over pgx. Uniqueness is
// delegated to the schema's unique indexes; balance bounds are enforced
// inside a single database transaction with a row lock, so concurrent
// service instances cannot race each other past the limits.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punchamoorthee/bankapi/internal/store"
)

var (
	_ store.UserStore        = (*UserStore)(nil)
	_ store.AccountStore     = (*AccountStore)(nil)
	_ store.TransactionStore = (*TransactionStore)(nil)
)

type Store struct {
	db      *pgxpool.Pool
	ceiling int64
}

func NewStore(ctx context.Context, connString string, ceiling int64) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Store{db: pool, ceiling: ceiling}, nil
}

func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) Users() *UserStore               { return &UserStore{s} }
func (s *Store) Accounts() *AccountStore         { return &AccountStore{s} }
func (s *Store) Transactions() *TransactionStore { return &TransactionStore{s} }

// uniqueViolation is the Postgres error code for a unique index conflict.
const uniqueViolation = "23505"

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrDuplicate
	}
	return err
}
