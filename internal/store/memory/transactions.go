package memory

import (
	"context"
	"sort"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type TransactionStore struct {
	s *Store
}

func (r *TransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	acc, ok := r.s.accounts[tx.AccountID]
	if !ok {
		return store.ErrNotFound
	}

	delta := tx.Amount
	if tx.Type == domain.TransactionWithdrawal {
		delta = -delta
	}
	next := acc.Balance + delta
	if next < 0 {
		return store.ErrInsufficientFunds
	}
	if next > r.s.ceiling {
		return store.ErrCeilingExceeded
	}

	acc.Balance = next
	cp := *tx
	r.s.transactions[tx.ID] = &cp
	r.s.txByAccount[tx.AccountID] = append(r.s.txByAccount[tx.AccountID], tx.ID)
	return nil
}

func (r *TransactionStore) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *TransactionStore) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.txByAccount[accountID]
	out := make([]*domain.Transaction, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.transactions[id]
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
