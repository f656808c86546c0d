package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
// AccountID/CategoryID/SubCategory apply to income and expense entries;
// FromAccountID/ToAccountID apply to transfers.
type CreateTransactionInput struct {
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Date          time.Time
	Note          string
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	SubCategory   string
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles creating a single ledger entry.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.ReportCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
	}
}

// Execute validates and persists a new transaction.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	tx, err := buildEntity(input)
	if err != nil {
		return nil, err
	}
	if err := validateShape(tx); err != nil {
		return nil, err
	}
	if err := validateCategoryReference(ctx, uc.categoryRepo, tx); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// buildEntity assembles the entity for the given input shape. Shape
// violations surface later through validateShape, so missing fields here
// only produce an entity that will fail validation.
func buildEntity(input CreateTransactionInput) (*entity.Transaction, error) {
	if input.Type == entity.TransactionTypeTransfer {
		if input.FromAccountID == nil || input.ToAccountID == nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransferAccounts,
				"transfer endpoints are required",
				domainerror.ErrMissingTransferAccounts,
			)
		}
		return entity.NewTransfer(
			input.Amount, input.Date, input.Note,
			*input.FromAccountID, *input.ToAccountID,
		), nil
	}

	if input.AccountID == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingAccount,
			"account is required",
			domainerror.ErrMissingAccount,
		)
	}
	tx := entity.NewTransaction(
		input.Type, input.Amount, input.Date, input.Note,
		*input.AccountID, input.CategoryID, input.SubCategory,
	)
	tx.FromAccountID = input.FromAccountID
	tx.ToAccountID = input.ToAccountID
	return tx, nil
}
