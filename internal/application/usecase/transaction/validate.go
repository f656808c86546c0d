// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// validateShape enforces the per-type shape invariants of a ledger entry:
// transfers carry exactly the two endpoints and no category fields,
// income/expense entries carry an account and optionally a category of the
// matching type, and every amount is strictly positive.
func validateShape(tx *entity.Transaction) error {
	if !entity.IsValidTransactionType(tx.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"unknown transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !tx.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if tx.IsTransfer() {
		if tx.FromAccountID == nil || tx.ToAccountID == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransferAccounts,
				"transfer endpoints are required",
				domainerror.ErrMissingTransferAccounts,
			)
		}
		if tx.AccountID != nil || tx.CategoryID != nil || tx.SubCategory != "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryFieldsOnTransfer,
				"transfers carry no account or category fields",
				domainerror.ErrCategoryFieldsOnTransfer,
			)
		}
		return nil
	}

	if tx.AccountID == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingAccount,
			"account is required",
			domainerror.ErrMissingAccount,
		)
	}
	if tx.FromAccountID != nil || tx.ToAccountID != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransferFieldsOnEntry,
			"transfer endpoints are only valid for transfers",
			domainerror.ErrTransferFieldsOnEntry,
		)
	}
	return nil
}

// validateCategoryReference checks that a referenced category exists and its
// type matches the entry's type. Transfers and category-less entries pass.
func validateCategoryReference(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	tx *entity.Transaction,
) error {
	if tx.CategoryID == nil {
		return nil
	}

	cat, err := categoryRepo.FindByID(ctx, *tx.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if cat == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"referenced category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if string(cat.Type) != string(tx.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"category type does not match transaction type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}
	return nil
}
