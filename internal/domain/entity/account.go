// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKey identifies the kind of account (cash, bank or wallet).
type AccountKey string

const (
	AccountKeyCash   AccountKey = "cash"
	AccountKeyBank   AccountKey = "bank"
	AccountKeyWallet AccountKey = "wallet"
)

// Account represents a money holding place in the Pocket Ledger system.
// An account never stores its balance; balances are always derived from
// the transaction log.
type Account struct {
	ID        uuid.UUID
	Key       AccountKey
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(key AccountKey, name string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Key:       key,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidAccountKey reports whether the given key is a known account kind.
func IsValidAccountKey(key AccountKey) bool {
	return key == AccountKeyCash || key == AccountKeyBank || key == AccountKeyWallet
}

// AccountWithBalance pairs an account with its derived all-time balance.
type AccountWithBalance struct {
	Account *Account
	Balance decimal.Decimal
}
