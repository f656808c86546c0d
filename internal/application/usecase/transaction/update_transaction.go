package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// An edit is a full replace: every field of the entry is taken from the
// input, only the ID and creation time survive.
type UpdateTransactionInput struct {
	ID uuid.UUID
	CreateTransactionInput
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles editing a ledger entry in place.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
	}
}

// Execute replaces an existing transaction, keeping its identity.
func (uc *UpdateTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateTransactionInput,
) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if existing == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	tx, err := buildEntity(input.CreateTransactionInput)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = time.Now().UTC()

	if err := validateShape(tx); err != nil {
		return nil, err
	}
	if err := validateCategoryReference(ctx, uc.categoryRepo, tx); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
