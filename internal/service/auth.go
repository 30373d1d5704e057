// Package service contains the domain core: the authentication engine, the
// authorization predicates, the account lifecycle manager and the transaction
// recorder. Every operation here is safe to call from any entry point; none
// relies on checks having run in the surrounding HTTP wiring.
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/punchamoorthee/bankapi/internal/auth"
	"github.com/punchamoorthee/bankapi/internal/config"
	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// AuthService verifies credentials and issues and resolves session tokens.
type AuthService struct {
	users      store.UserStore
	secret     string
	sessionTTL time.Duration
}

func NewAuthService(users store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, secret: cfg.Secret, sessionTTL: cfg.SessionTTL}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.Validation("missing required fields")
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.Conflict("user already exists")
	case !errors.Is(err, store.ErrNotFound):
		return nil, domain.StoreError(err)
	}

	salt := auth.NewSalt()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: auth.HashPassword(s.secret, salt, password),
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domain.Conflict("user already exists")
		}
		return nil, domain.StoreError(err)
	}
	return user, nil
}

// Login checks the credentials and, on success, mints a session token and
// persists it on the user record. Re-login replaces the previous session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.Validation("missing email or password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", domain.NotFound("user not found")
		}
		return nil, "", domain.StoreError(err)
	}

	if !auth.VerifyPassword(s.secret, user.Salt, user.PasswordHash, password) {
		return nil, "", domain.Forbidden("invalid password")
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.secret), s.sessionTTL)
	if err != nil {
		return nil, "", domain.StoreError(err)
	}

	user.SessionToken = token
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", domain.StoreError(err)
	}
	return user, token, nil
}

// ResolveSession turns a presented token into the owning user. The token must
// carry a valid signature and expiry, and must still be the one stored on the
// user record, so logging in again revokes older sessions.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	userID, err := auth.UserIDFromToken(token, []byte(s.secret))
	if err != nil {
		return nil, domain.Forbidden("invalid or expired session")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.Forbidden("invalid or expired session")
		}
		return nil, domain.StoreError(err)
	}

	if subtle.ConstantTimeCompare([]byte(user.SessionToken), []byte(token)) != 1 {
		return nil, domain.Forbidden("session revoked")
	}
	return user, nil
}

// Logout clears the stored session token so the current token stops resolving.
func (s *AuthService) Logout(ctx context.Context, caller *domain.User) error {
	if caller == nil {
		return domain.Unauthorized("missing credential")
	}
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("user not found")
		}
		return domain.StoreError(err)
	}
	user.SessionToken = ""
	if err := s.users.Update(ctx, user); err != nil {
		return domain.StoreError(err)
	}
	return nil
}
