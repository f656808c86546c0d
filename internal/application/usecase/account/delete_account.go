package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for deleting an account.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase handles account deletion. Transactions referencing
// the account are not cascaded; their references become orphaned and the
// balance calculator simply stops resolving them.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.ReportCache
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	cache adapter.ReportCache,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute deletes an account by ID.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	acc, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if acc == nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if err := uc.accountRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	invalidateCache(ctx, uc.cache)
	return nil
}
