package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

func TestCreateTransaction_DepositsAndWithdrawals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	account := f.createAccount(t, alice, "Main")

	dep, err := f.transactions.Create(ctx, alice, account.Number, 10_00, "GBP", domain.TransactionDeposit, "payday")
	require.NoError(t, err)
	assert.NotEmpty(t, dep.ID)
	assert.Equal(t, account.ID, dep.AccountID)
	assert.Equal(t, alice.ID, dep.UserID)

	got, err := f.accounts.Get(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(10_00), got.Balance)

	_, err = f.transactions.Create(ctx, alice, account.Number, 4_00, "GBP", domain.TransactionWithdrawal, "")
	require.NoError(t, err)

	got, err = f.accounts.Get(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(6_00), got.Balance)
}

func TestCreateTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	account := f.createAccount(t, alice, "Main")

	cases := []struct {
		name     string
		amount   int64
		currency string
		txType   domain.TransactionType
	}{
		{"zero amount", 0, "GBP", domain.TransactionDeposit},
		{"negative amount", -5_00, "GBP", domain.TransactionDeposit},
		{"over ceiling", 1_000_001, "GBP", domain.TransactionDeposit},
		{"missing currency", 1_00, "", domain.TransactionDeposit},
		{"wrong currency", 1_00, "EUR", domain.TransactionDeposit},
		{"missing type", 1_00, "GBP", ""},
		{"unknown type", 1_00, "GBP", domain.TransactionType("transfer")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.transactions.Create(ctx, alice, account.Number, tc.amount, tc.currency, tc.txType, "")
			assert.True(t, domain.IsKind(err, domain.KindValidation), "got %v", err)
		})
	}

	// A rejected request must not have moved the balance.
	got, err := f.accounts.Get(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Balance)
}

func TestCreateTransaction_OwnershipEnforcedInternally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	bob := f.registerUser(t, "bob", "bob@x.com")
	account := f.createAccount(t, alice, "Main")

	_, err := f.transactions.Create(ctx, bob, account.Number, 1_00, "GBP", domain.TransactionDeposit, "")
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	_, err = f.transactions.Create(ctx, nil, account.Number, 1_00, "GBP", domain.TransactionDeposit, "")
	assert.True(t, domain.IsKind(err, domain.KindUnauthorized))

	_, err = f.transactions.Create(ctx, alice, "01999999", 1_00, "GBP", domain.TransactionDeposit, "")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCreateTransaction_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	account := f.createAccount(t, alice, "Main")

	_, err := f.transactions.Create(ctx, alice, account.Number, 5_00, "GBP", domain.TransactionDeposit, "")
	require.NoError(t, err)

	_, err = f.transactions.Create(ctx, alice, account.Number, 6_00, "GBP", domain.TransactionWithdrawal, "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	// Nothing from the rejected withdrawal persists.
	got, err := f.accounts.Get(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(5_00), got.Balance)

	txs, err := f.transactions.List(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestCreateTransaction_BalanceCeiling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	account := f.createAccount(t, alice, "Main")

	// Two maximal deposits: the first lands exactly on the ceiling, the
	// second would push past it.
	_, err := f.transactions.Create(ctx, alice, account.Number, 1_000_000, "GBP", domain.TransactionDeposit, "")
	require.NoError(t, err)

	_, err = f.transactions.Create(ctx, alice, account.Number, 1_00, "GBP", domain.TransactionDeposit, "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	got, err := f.accounts.Get(ctx, alice, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), got.Balance)
}

func TestListTransactions_Ordered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	account := f.createAccount(t, alice, "Main")

	first, err := f.transactions.Create(ctx, alice, account.Number, 3_00, "GBP", domain.TransactionDeposit, "a")
	require.NoError(t, err)
	second, err := f.transactions.Create(ctx, alice, account.Number, 1_00, "GBP", domain.TransactionWithdrawal, "b")
	require.NoError(t, err)

	txs, err := f.transactions.List(ctx, alice, account.Number)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, first.ID, txs[0].ID)
	assert.Equal(t, second.ID, txs[1].ID)
}

func TestGetTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	main := f.createAccount(t, alice, "Main")
	other := f.createAccount(t, alice, "Other")

	tx, err := f.transactions.Create(ctx, alice, main.Number, 2_00, "GBP", domain.TransactionDeposit, "")
	require.NoError(t, err)

	got, err := f.transactions.Get(ctx, alice, main.Number, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)

	// Real transaction addressed through the wrong account: a mismatch,
	// not a not-found.
	_, err = f.transactions.Get(ctx, alice, other.Number, tx.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Contains(t, err.Error(), "does not belong")

	_, err = f.transactions.Get(ctx, alice, main.Number, "no-such-tx")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	bob := f.registerUser(t, "bob", "bob@x.com")
	_, err = f.transactions.Get(ctx, bob, main.Number, tx.ID)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}
