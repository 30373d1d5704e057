// Package store defines the persistence interfaces for users, accounts and
// transactions, plus the sentinel errors every implementation maps its
// constraint failures onto. Uniqueness and balance bounds are enforced inside
// the store's atomic unit so multiple service instances stay consistent.
package store

import (
	"context"
	"errors"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCeilingExceeded   = errors.New("balance ceiling exceeded")
)

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user together with their accounts and transactions.
	Delete(ctx context.Context, id string) error
}

type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}

type TransactionStore interface {
	// Create persists the transaction and applies its signed amount to the
	// cached account balance in one atomic step. It fails with
	// ErrInsufficientFunds or ErrCeilingExceeded, persisting nothing, when
	// the resulting balance would leave [0, ceiling].
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	// ListByAccount returns transactions ordered by creation time ascending.
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}
