package domain

import "time"

// User is an authenticated identity. Credential material is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	SessionToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountBusiness AccountType = "business"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountPersonal, AccountBusiness:
		return true
	}
	return false
}

// Account is owned by exactly one user. Number is the external identifier,
// distinct from the internal ID. Balance is held in minor currency units and
// stays within [0, ceiling]; it changes only through accepted transactions.
type Account struct {
	ID        string      `json:"id"`
	Number    string      `json:"account_number"`
	SortCode  string      `json:"sort_code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"account_type"`
	Balance   int64       `json:"-"`
	Currency  string      `json:"currency"`
	UserID    string      `json:"user_id"`
	CreatedAt time.Time   `json:"created_timestamp"`
	UpdatedAt time.Time   `json:"updated_timestamp"`
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

func ValidTransactionType(t TransactionType) bool {
	return t == TransactionDeposit || t == TransactionWithdrawal
}

// Transaction is immutable once created. Amount is in minor currency units.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    int64           `json:"-"`
	Currency  string          `json:"currency"`
	Type      TransactionType `json:"type"`
	Reference string          `json:"reference,omitempty"`
	AccountID string          `json:"account_id"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_timestamp"`
}

// AccountPatch carries the owner-mutable account fields. Nil means unchanged.
// Balance, number, sort code and owner are deliberately not representable.
type AccountPatch struct {
	Name     *string
	Type     *AccountType
	Currency *string
}
