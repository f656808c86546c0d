package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// RenameAccountInput represents the input for renaming an account.
type RenameAccountInput struct {
	ID   uuid.UUID
	Name string
}

// RenameAccountOutput represents the output of renaming an account.
type RenameAccountOutput struct {
	Account *entity.Account
}

// RenameAccountUseCase handles account renaming, the only mutation an
// account supports.
type RenameAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewRenameAccountUseCase creates a new RenameAccountUseCase instance.
func NewRenameAccountUseCase(accountRepo adapter.AccountRepository) *RenameAccountUseCase {
	return &RenameAccountUseCase{accountRepo: accountRepo}
}

// Execute renames an existing account.
func (uc *RenameAccountUseCase) Execute(
	ctx context.Context,
	input RenameAccountInput,
) (*RenameAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	acc, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if acc == nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	acc.Name = name
	acc.UpdatedAt = time.Now().UTC()
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &RenameAccountOutput{Account: acc}, nil
}
