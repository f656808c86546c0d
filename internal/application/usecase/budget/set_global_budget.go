// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SetGlobalBudgetInput represents the input for setting the monthly ceiling.
// Zero clears it.
type SetGlobalBudgetInput struct {
	Amount decimal.Decimal
}

// SetGlobalBudgetUseCase handles the process-wide monthly spending ceiling.
type SetGlobalBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetGlobalBudgetUseCase creates a new SetGlobalBudgetUseCase instance.
func NewSetGlobalBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetGlobalBudgetUseCase {
	return &SetGlobalBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute stores the global monthly budget.
func (uc *SetGlobalBudgetUseCase) Execute(ctx context.Context, input SetGlobalBudgetInput) error {
	if input.Amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudget,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}
	if err := uc.budgetRepo.SetGlobalBudget(ctx, input.Amount); err != nil {
		return fmt.Errorf("failed to store global budget: %w", err)
	}
	return nil
}

// GetGlobalBudgetOutput represents the output of reading the monthly ceiling.
type GetGlobalBudgetOutput struct {
	Amount decimal.Decimal `json:"amount"`
}

// GetGlobalBudgetUseCase handles reading the monthly ceiling.
type GetGlobalBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetGlobalBudgetUseCase creates a new GetGlobalBudgetUseCase instance.
func NewGetGlobalBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetGlobalBudgetUseCase {
	return &GetGlobalBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute reads the global monthly budget. Zero means unset.
func (uc *GetGlobalBudgetUseCase) Execute(ctx context.Context) (*GetGlobalBudgetOutput, error) {
	amount, err := uc.budgetRepo.GetGlobalBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read global budget: %w", err)
	}
	return &GetGlobalBudgetOutput{Amount: amount}, nil
}
