package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	f.registerUser(t, "bob", "bob@x.com")

	users, err := f.users.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = f.users.List(ctx, nil)
	assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
}

func TestGetUser_SelfOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	bob := f.registerUser(t, "bob", "bob@x.com")

	got, err := f.users.Get(ctx, alice, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = f.users.Get(ctx, bob, alice.ID)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	_, err = f.users.Get(ctx, nil, alice.ID)
	assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
}

func TestUpdateUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	bob := f.registerUser(t, "bob", "bob@x.com")

	updated, err := f.users.UpdateUsername(ctx, alice, alice.ID, "alice2")
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)

	_, err = f.users.UpdateUsername(ctx, alice, alice.ID, "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = f.users.UpdateUsername(ctx, alice, alice.ID, "bob")
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	_, err = f.users.UpdateUsername(ctx, bob, alice.ID, "stolen")
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}

func TestDeleteUser_CascadesAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice", "alice@x.com")
	bob := f.registerUser(t, "bob", "bob@x.com")
	account := f.createAccount(t, alice, "Main")
	_, err := f.transactions.Create(ctx, alice, account.Number, 1_00, "GBP", domain.TransactionDeposit, "")
	require.NoError(t, err)
	bobAccount := f.createAccount(t, bob, "Bob's")

	err = f.users.Delete(ctx, bob, alice.ID)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	require.NoError(t, f.users.Delete(ctx, alice, alice.ID))

	_, err = f.users.Get(ctx, alice, alice.ID)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	// The deleted user's accounts (and their transactions) went with them.
	_, err = f.accounts.Get(ctx, alice, account.Number)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	// An unrelated user's data is untouched.
	got, err := f.accounts.Get(ctx, bob, bobAccount.Number)
	require.NoError(t, err)
	assert.Equal(t, bobAccount.Number, got.Number)
}
