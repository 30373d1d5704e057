package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/bankapi/internal/config"
	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                "0",
		Env:                 "test",
		Secret:              "test-secret",
		Currency:            "GBP",
		SortCode:            "10-10-10",
		BalanceCeiling:      1_000_000,
		AccountNumberPrefix: "01",
		SessionTTL:          6 * time.Hour,
	}
}

type fixture struct {
	cfg          *config.Config
	store        *memory.Store
	auth         *AuthService
	users        *UserService
	accounts     *AccountService
	transactions *TransactionService
	authz        *Authorizer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := testConfig()
	st := memory.NewStore(cfg.BalanceCeiling)
	authz := NewAuthorizer(st.Accounts(), st.Transactions())
	return &fixture{
		cfg:          cfg,
		store:        st,
		auth:         NewAuthService(st.Users(), cfg),
		users:        NewUserService(st.Users(), authz),
		accounts:     NewAccountService(st.Accounts(), authz, cfg),
		transactions: NewTransactionService(st.Transactions(), authz, cfg.BalanceCeiling),
		authz:        authz,
	}
}

func (f *fixture) registerUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), username, email, "pw123")
	require.NoError(t, err)
	return user
}

func (f *fixture) createAccount(t *testing.T, owner *domain.User, name string) *domain.Account {
	t.Helper()
	account, err := f.accounts.Create(context.Background(), owner, name, domain.AccountPersonal, "")
	require.NoError(t, err)
	return account
}
