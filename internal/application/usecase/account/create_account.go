package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateAccountInput represents the input for creating an account.
type CreateAccountInput struct {
	Key  entity.AccountKey
	Name string
}

// CreateAccountOutput represents the output of creating an account.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       adapter.ReportCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	accountRepo adapter.AccountRepository,
	cache adapter.ReportCache,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute creates a new account.
func (uc *CreateAccountUseCase) Execute(
	ctx context.Context,
	input CreateAccountInput,
) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if !entity.IsValidAccountKey(input.Key) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountKey,
			"unknown account key",
			domainerror.ErrInvalidAccountKey,
		)
	}

	acc := entity.NewAccount(input.Key, name)
	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &CreateAccountOutput{Account: acc}, nil
}
