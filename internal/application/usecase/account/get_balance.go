package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// GetBalanceInput represents the input for getting an account balance.
type GetBalanceInput struct {
	AccountID uuid.UUID
}

// GetBalanceOutput represents the output of getting an account balance.
type GetBalanceOutput struct {
	Balance decimal.Decimal `json:"balance"`
}

// GetBalanceUseCase handles deriving a single account's balance.
type GetBalanceUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute derives the all-time balance of one account.
func (uc *GetBalanceUseCase) Execute(
	ctx context.Context,
	input GetBalanceInput,
) (*GetBalanceOutput, error) {
	acc, err := uc.accountRepo.FindByID(ctx, input.AccountID)
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

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &GetBalanceOutput{Balance: ComputeBalance(transactions, input.AccountID)}, nil
}
