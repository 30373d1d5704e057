package memory

import (
	"context"
	"sort"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

type UserStore struct {
	s *Store
}

func (r *UserStore) Create(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.userByEmail[u.Email]; ok {
		return store.ErrDuplicate
	}
	if _, ok := r.s.userByName[u.Username]; ok {
		return store.ErrDuplicate
	}
	cp := *u
	r.s.users[u.ID] = &cp
	r.s.userByEmail[u.Email] = u.ID
	r.s.userByName[u.Username] = u.ID
	return nil
}

func (r *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.userByEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r.s.users[id]
	return &cp, nil
}

func (r *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.userByName[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r.s.users[id]
	return &cp, nil
}

func (r *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserStore) Update(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.users[u.ID]
	if !ok {
		return store.ErrNotFound
	}
	if u.Email != old.Email {
		if _, taken := r.s.userByEmail[u.Email]; taken {
			return store.ErrDuplicate
		}
		delete(r.s.userByEmail, old.Email)
		r.s.userByEmail[u.Email] = u.ID
	}
	if u.Username != old.Username {
		if _, taken := r.s.userByName[u.Username]; taken {
			return store.ErrDuplicate
		}
		delete(r.s.userByName, old.Username)
		r.s.userByName[u.Username] = u.ID
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	for accID, acc := range r.s.accounts {
		if acc.UserID == id {
			r.s.dropAccountLocked(accID)
		}
	}
	delete(r.s.userByEmail, u.Email)
	delete(r.s.userByName, u.Username)
	delete(r.s.users, id)
	return nil
}
