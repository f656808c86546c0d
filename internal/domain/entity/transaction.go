// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a single entry in the ledger.
//
// Shape depends on the type: income/expense transactions carry AccountID and
// optionally CategoryID/SubCategory; transfers carry FromAccountID and
// ToAccountID and nothing else. Amount is always positive; direction is
// implied by the type, never by sign.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Date          time.Time
	Note          string
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	SubCategory   string
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new income or expense Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	note string,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	subCategory string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		Note:        note,
		AccountID:   &accountID,
		CategoryID:  categoryID,
		SubCategory: subCategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewTransfer creates a new transfer Transaction entity between two accounts.
func NewTransfer(
	amount decimal.Decimal,
	date time.Time,
	note string,
	fromAccountID, toAccountID uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Type:          TransactionTypeTransfer,
		Amount:        amount,
		Date:          date,
		Note:          note,
		FromAccountID: &fromAccountID,
		ToAccountID:   &toAccountID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidTransactionType reports whether the given type is known.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeExpense ||
		transactionType == TransactionTypeIncome ||
		transactionType == TransactionTypeTransfer
}

// IsTransfer reports whether the transaction moves money between accounts.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

// LocalDateKey returns the transaction's calendar day in the given location,
// formatted as YYYY-MM-DD. Day buckets are always local-midnight bounded.
func (t *Transaction) LocalDateKey(loc *time.Location) string {
	return t.Date.In(loc).Format("2006-01-02")
}

// TransactionWithCategory pairs a transaction with its resolved category,
// when one is still present in the registry.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
