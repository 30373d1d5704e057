package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/punchamoorthee/bankapi/internal/config"
	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

// maxNumberAttempts bounds the retries when a freshly generated account
// number collides with an existing one.
const maxNumberAttempts = 5

// AccountService manages the account lifecycle and its invariants: unique
// account numbers in the configured scheme, fixed sort code, allow-listed
// currency, and a balance that only transactions may move.
type AccountService struct {
	accounts store.AccountStore
	authz    *Authorizer
	cfg      *config.Config

	// newNumber is a seam so tests can force collisions.
	newNumber func() string
}

func NewAccountService(accounts store.AccountStore, authz *Authorizer, cfg *config.Config) *AccountService {
	return &AccountService{
		accounts:  accounts,
		authz:     authz,
		cfg:       cfg,
		newNumber: func() string { return randomAccountNumber(cfg.AccountNumberPrefix) },
	}
}

func randomAccountNumber(prefix string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s%06d", prefix, n)
}

func (s *AccountService) Create(ctx context.Context, owner *domain.User, name string, accType domain.AccountType, currency string) (*domain.Account, error) {
	if owner == nil {
		return nil, domain.Unauthorized("missing credential")
	}
	if name == "" {
		return nil, domain.Validation("missing account name")
	}
	if accType == "" {
		return nil, domain.Validation("missing account type")
	}
	if !domain.ValidAccountType(accType) {
		return nil, domain.Validation("invalid account type")
	}
	if currency == "" {
		currency = s.cfg.Currency
	}
	if currency != s.cfg.Currency {
		return nil, domain.Validation("unsupported currency")
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		now := time.Now().UTC()
		account := &domain.Account{
			ID:        uuid.New().String(),
			Number:    s.newNumber(),
			SortCode:  s.cfg.SortCode,
			Name:      name,
			Type:      accType,
			Balance:   0,
			Currency:  currency,
			UserID:    owner.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := s.accounts.Create(ctx, account)
		if err == nil {
			return account, nil
		}
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		return nil, domain.StoreError(err)
	}
	return nil, domain.Conflict("could not allocate a unique account number")
}

func (s *AccountService) Get(ctx context.Context, caller *domain.User, number string) (*domain.Account, error) {
	return s.authz.RequireAccountOwner(ctx, caller, number)
}

func (s *AccountService) List(ctx context.Context, caller *domain.User) ([]*domain.Account, error) {
	if caller == nil {
		return nil, domain.Unauthorized("missing credential")
	}
	accounts, err := s.accounts.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return accounts, nil
}

// Update applies the owner-mutable fields only. Anything else a client put
// in the patch never reaches this point.
func (s *AccountService) Update(ctx context.Context, caller *domain.User, number string, patch domain.AccountPatch) (*domain.Account, error) {
	account, err := s.authz.RequireAccountOwner(ctx, caller, number)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, domain.Validation("account name cannot be empty")
		}
		account.Name = *patch.Name
	}
	if patch.Type != nil {
		if !domain.ValidAccountType(*patch.Type) {
			return nil, domain.Validation("invalid account type")
		}
		account.Type = *patch.Type
	}
	if patch.Currency != nil {
		if *patch.Currency != s.cfg.Currency {
			return nil, domain.Validation("unsupported currency")
		}
		account.Currency = *patch.Currency
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NotFound("account not found")
		}
		return nil, domain.StoreError(err)
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, caller *domain.User, number string) error {
	account, err := s.authz.RequireAccountOwner(ctx, caller, number)
	if err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, account.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.NotFound("account not found")
		}
		return domain.StoreError(err)
	}
	return nil
}
