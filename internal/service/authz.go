package service

import (
	"context"
	"errors"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// Authorizer holds the three ownership predicates every resource operation
// is gated on. The ordering is fixed: a missing identity always fails before
// any lookup, and existence is checked before ownership. Predicates return
// the resolved records so callers never need a second lookup.
type Authorizer struct {
	accounts     store.AccountStore
	transactions store.TransactionStore
}

func NewAuthorizer(accounts store.AccountStore, transactions store.TransactionStore) *Authorizer {
	return &Authorizer{accounts: accounts, transactions: transactions}
}

// RequireSelf gates operations on a user record to that user.
func (a *Authorizer) RequireSelf(caller *domain.User, userID string) error {
	if caller == nil {
		return domain.Unauthorized("missing credential")
	}
	if caller.ID != userID {
		return domain.Forbidden("forbidden")
	}
	return nil
}

// RequireAccountOwner resolves the account by number and checks the caller
// owns it.
func (a *Authorizer) RequireAccountOwner(ctx context.Context, caller *domain.User, number string) (*domain.Account, error) {
	if caller == nil {
		return nil, domain.Unauthorized("missing credential")
	}

	account, err := a.accounts.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("account not found")
		}
		return nil, domain.StoreError(err)
	}

	if account.UserID != caller.ID {
		return nil, domain.Forbidden("account does not belong to caller")
	}
	return account, nil
}

// RequireTransactionOwner resolves the transaction, then its owning account,
// then checks the caller owns that account. A missing transaction and a
// missing account are distinct failures.
func (a *Authorizer) RequireTransactionOwner(ctx context.Context, caller *domain.User, txID string) (*domain.Transaction, *domain.Account, error) {
	if caller == nil {
		return nil, nil, domain.Unauthorized("missing credential")
	}

	tx, err := a.transactions.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domain.NotFound("transaction not found")
		}
		return nil, nil, domain.StoreError(err)
	}

	account, err := a.accounts.GetByID(ctx, tx.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domain.NotFound("account not found")
		}
		return nil, nil, domain.StoreError(err)
	}

	if account.UserID != caller.ID {
		return nil, nil, domain.Forbidden("transaction does not belong to caller")
	}
	return tx, account, nil
}
