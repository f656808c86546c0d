// Package account contains account-related use cases.
package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ComputeBalance folds the full transaction log into one account's all-time
// balance. Income adds, expense subtracts, a transfer subtracts from its
// source and adds to its destination, so transfers net to zero system-wide.
// An account no transaction references yields zero.
func ComputeBalance(transactions []*entity.Transaction, accountID uuid.UUID) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range transactions {
		if tx.AccountID != nil && *tx.AccountID == accountID {
			switch tx.Type {
			case entity.TransactionTypeIncome:
				balance = balance.Add(tx.Amount)
			case entity.TransactionTypeExpense:
				balance = balance.Sub(tx.Amount)
			}
		}
		if tx.FromAccountID != nil && *tx.FromAccountID == accountID {
			balance = balance.Sub(tx.Amount)
		}
		if tx.ToAccountID != nil && *tx.ToAccountID == accountID {
			balance = balance.Add(tx.Amount)
		}
	}
	return balance
}
