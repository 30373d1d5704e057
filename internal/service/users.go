package service

import (
	"context"
	"errors"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// UserService exposes the user record operations. Reads of other users are
// limited to the public projection by serialization; mutations are gated on
// self-ownership.
type UserService struct {
	users store.UserStore
	authz *Authorizer
}

func NewUserService(users store.UserStore, authz *Authorizer) *UserService {
	return &UserService{users: users, authz: authz}
}

func (s *UserService) List(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if caller == nil {
		return nil, domain.Unauthorized("missing credential")
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error) {
	if err := s.authz.RequireSelf(caller, id); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.StoreError(err)
	}
	return user, nil
}

func (s *UserService) UpdateUsername(ctx context.Context, caller *domain.User, id, username string) (*domain.User, error) {
	if err := s.authz.RequireSelf(caller, id); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, domain.Validation("username is required")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("user not found")
		}
		return nil, domain.StoreError(err)
	}

	user.Username = username
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domain.Conflict("username already taken")
		}
		return nil, domain.StoreError(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if err := s.authz.RequireSelf(caller, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("user not found")
		}
		return domain.StoreError(err)
	}
	return nil
}
