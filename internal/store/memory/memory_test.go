package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

const testCeiling = 1_000_000

func newUser(username, email string) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

func newAccount(userID, number string) *domain.Account {
	now := time.Now().UTC()
	return &domain.Account{
		ID:        uuid.New().String(),
		Number:    number,
		SortCode:  "10-10-10",
		Name:      "Test",
		Type:      domain.AccountPersonal,
		Currency:  "GBP",
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTx(accountID, userID string, amount int64, txType domain.TransactionType) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.New().String(),
		Amount:    amount,
		Currency:  "GBP",
		Type:      txType,
		AccountID: accountID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserUniqueness(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	require.NoError(t, st.Users().Create(ctx, newUser("alice", "alice@x.com")))

	err := st.Users().Create(ctx, newUser("alice", "other@x.com"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = st.Users().Create(ctx, newUser("other", "alice@x.com"))
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserUpdate_ReindexesUsername(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, st.Users().Create(ctx, alice))

	alice.Username = "alicia"
	require.NoError(t, st.Users().Update(ctx, alice))

	got, err := st.Users().GetByUsername(ctx, "alicia")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	// The old name is free again.
	require.NoError(t, st.Users().Create(ctx, newUser("alice", "second@x.com")))
}

func TestAccountNumberUniqueness(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, st.Users().Create(ctx, alice))
	require.NoError(t, st.Accounts().Create(ctx, newAccount(alice.ID, "01000001")))

	err := st.Accounts().Create(ctx, newAccount(alice.ID, "01000001"))
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestTransactionBounds(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, st.Users().Create(ctx, alice))
	acc := newAccount(alice.ID, "01000001")
	require.NoError(t, st.Accounts().Create(ctx, acc))

	err := st.Transactions().Create(ctx, newTx(acc.ID, alice.ID, 1_00, domain.TransactionWithdrawal))
	assert.ErrorIs(t, err, store.ErrInsufficientFunds)

	require.NoError(t, st.Transactions().Create(ctx, newTx(acc.ID, alice.ID, testCeiling, domain.TransactionDeposit)))

	err = st.Transactions().Create(ctx, newTx(acc.ID, alice.ID, 1, domain.TransactionDeposit))
	assert.ErrorIs(t, err, store.ErrCeilingExceeded)

	// Rejected writes left the balance exactly at the ceiling.
	got, err := st.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(testCeiling), got.Balance)

	err = st.Transactions().Create(ctx, newTx("missing-account", alice.ID, 1_00, domain.TransactionDeposit))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUser_DropsAccountsAndTransactions(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, st.Users().Create(ctx, alice))
	acc := newAccount(alice.ID, "01000001")
	require.NoError(t, st.Accounts().Create(ctx, acc))
	tx := newTx(acc.ID, alice.ID, 5_00, domain.TransactionDeposit)
	require.NoError(t, st.Transactions().Create(ctx, tx))

	require.NoError(t, st.Users().Delete(ctx, alice.ID))

	_, err := st.Accounts().GetByNumber(ctx, acc.Number)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Transactions().GetByID(ctx, tx.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The number is reusable once the owning user is gone.
	require.NoError(t, st.Users().Create(ctx, newUser("bob", "bob@x.com")))
	require.NoError(t, st.Accounts().Create(ctx, newAccount(alice.ID, "01000001")))
}

func TestReadsReturnCopies(t *testing.T) {
	st := NewStore(testCeiling)
	ctx := context.Background()

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, st.Users().Create(ctx, alice))
	acc := newAccount(alice.ID, "01000001")
	require.NoError(t, st.Accounts().Create(ctx, acc))

	got, err := st.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	got.Balance = 9_999

	again, err := st.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Balance)
}
