package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// TransactionService records immutable deposit and withdrawal transactions.
// It enforces account ownership itself on every call, so it stays correct
// even when invoked from wiring where only authentication ran.
type TransactionService struct {
	transactions store.TransactionStore
	authz        *Authorizer
	ceiling      int64
}

func NewTransactionService(transactions store.TransactionStore, authz *Authorizer, ceiling int64) *TransactionService {
	return &TransactionService{transactions: transactions, authz: authz, ceiling: ceiling}
}

func (s *TransactionService) Create(ctx context.Context, caller *domain.User, number string, amount int64, currency string, txType domain.TransactionType, reference string) (*domain.Transaction, error) {
	if currency == "" {
		return nil, domain.Validation("missing currency")
	}
	if txType == "" {
		return nil, domain.Validation("missing transaction type")
	}
	if !domain.ValidTransactionType(txType) {
		return nil, domain.Validation("invalid transaction type")
	}
	if amount <= 0 {
		return nil, domain.Validation("amount must be positive")
	}
	if amount > s.ceiling {
		return nil, domain.Validation("amount exceeds the transaction ceiling")
	}

	account, err := s.authz.RequireAccountOwner(ctx, caller, number)
	if err != nil {
		return nil, err
	}
	if currency != account.Currency {
		return nil, domain.Validation("currency does not match account currency")
	}

	tx := &domain.Transaction{
		ID:        uuid.New().String(),
		Amount:    amount,
		Currency:  currency,
		Type:      txType,
		Reference: reference,
		AccountID: account.ID,
		UserID:    caller.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			// Account deleted between the ownership check and the write.
			return nil, domain.NotFound("account not found")
		case errors.Is(err, store.ErrInsufficientFunds):
			return nil, domain.Validation("insufficient funds")
		case errors.Is(err, store.ErrCeilingExceeded):
			return nil, domain.Validation("balance ceiling exceeded")
		default:
			return nil, domain.StoreError(err)
		}
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, caller *domain.User, number string) ([]*domain.Transaction, error) {
	account, err := s.authz.RequireAccountOwner(ctx, caller, number)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return txs, nil
}

// Get resolves the transaction, then the addressed account, and cross-checks
// that the transaction belongs to it. The mismatch failure is deliberately
// distinct from either not-found case.
func (s *TransactionService) Get(ctx context.Context, caller *domain.User, number, txID string) (*domain.Transaction, error) {
	if caller == nil {
		return nil, domain.Unauthorized("missing credential")
	}

	tx, err := s.transactions.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("transaction not found")
		}
		return nil, domain.StoreError(err)
	}

	account, err := s.authz.RequireAccountOwner(ctx, caller, number)
	if err != nil {
		return nil, err
	}

	if tx.AccountID != account.ID {
		return nil, domain.Validation("transaction does not belong to this account")
	}
	return tx, nil
}
