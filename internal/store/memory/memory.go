// Package memory provides an in-memory store used by tests and DB-less runs.
// One mutex guards every map, so cross-entity operations (cascading deletes,
// balance updates with bound checks) are atomic the way a database
// transaction is.
package memory

import (
	"sync"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/store"
)

var (
	_ store.UserStore        = (*UserStore)(nil)
	_ store.AccountStore     = (*AccountStore)(nil)
	_ store.TransactionStore = (*TransactionStore)(nil)
)

// Store is the shared state behind the three per-entity views.
type Store struct {
	mu      sync.RWMutex
	ceiling int64

	users        map[string]*domain.User
	userByEmail  map[string]string
	userByName   map[string]string
	accounts     map[string]*domain.Account
	accByNumber  map[string]string
	transactions map[string]*domain.Transaction
	txByAccount  map[string][]string
}

func NewStore(ceiling int64) *Store {
	return &Store{
		ceiling:      ceiling,
		users:        make(map[string]*domain.User),
		userByEmail:  make(map[string]string),
		userByName:   make(map[string]string),
		accounts:     make(map[string]*domain.Account),
		accByNumber:  make(map[string]string),
		transactions: make(map[string]*domain.Transaction),
		txByAccount:  make(map[string][]string),
	}
}

func (s *Store) Users() *UserStore               { return &UserStore{s} }
func (s *Store) Accounts() *AccountStore         { return &AccountStore{s} }
func (s *Store) Transactions() *TransactionStore { return &TransactionStore{s} }

// dropAccountLocked removes an account with its transactions. Caller holds mu.
func (s *Store) dropAccountLocked(id string) {
	acc := s.accounts[id]
	for _, txID := range s.txByAccount[id] {
		delete(s.transactions, txID)
	}
	delete(s.txByAccount, id)
	delete(s.accByNumber, acc.Number)
	delete(s.accounts, id)
}
