package memory

import (
	"context"
	"sort"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type AccountStore struct {
	s *Store
}

func (r *AccountStore) Create(ctx context.Context, a *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accByNumber[a.Number]; ok {
		return store.ErrDuplicate
	}
	cp := *a
	r.s.accounts[a.ID] = &cp
	r.s.accByNumber[a.Number] = a.ID
	return nil
}

func (r *AccountStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AccountStore) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.accByNumber[number]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r.s.accounts[id]
	return &cp, nil
}

func (r *AccountStore) ListByUser(ctx context.Context, userID string) ([]*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Account{}
	for _, a := range r.s.accounts {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Update rewrites the mutable fields of an existing account. The cached
// balance is owned by the transaction path and left untouched here.
func (r *AccountStore) Update(ctx context.Context, a *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.accounts[a.ID]
	if !ok {
		return store.ErrNotFound
	}
	cp := *a
	cp.Balance = old.Balance
	cp.Number = old.Number
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *AccountStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[id]; !ok {
		return store.ErrNotFound
	}
	r.s.dropAccountLocked(id)
	return nil
}
