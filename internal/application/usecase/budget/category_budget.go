package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// UpsertCategoryBudgetInput represents the input for setting a category budget.
type UpsertCategoryBudgetInput struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// UpsertCategoryBudgetOutput represents the output of setting a category budget.
type UpsertCategoryBudgetOutput struct {
	Budget *entity.CategoryBudget
}

// UpsertCategoryBudgetUseCase handles creating or replacing the budget of
// one category.
type UpsertCategoryBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertCategoryBudgetUseCase creates a new UpsertCategoryBudgetUseCase instance.
func NewUpsertCategoryBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *UpsertCategoryBudgetUseCase {
	return &UpsertCategoryBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute stores the budget for an existing category, replacing any
// previous amount.
func (uc *UpsertCategoryBudgetUseCase) Execute(
	ctx context.Context,
	input UpsertCategoryBudgetInput,
) (*UpsertCategoryBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudget,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	cat, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if cat == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}

	b := entity.NewCategoryBudget(input.CategoryID, input.Amount)
	if err := uc.budgetRepo.UpsertCategoryBudget(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to store category budget: %w", err)
	}
	return &UpsertCategoryBudgetOutput{Budget: b}, nil
}

// DeleteCategoryBudgetInput represents the input for removing a category budget.
type DeleteCategoryBudgetInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryBudgetUseCase handles removing the budget of one category.
type DeleteCategoryBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteCategoryBudgetUseCase creates a new DeleteCategoryBudgetUseCase instance.
func NewDeleteCategoryBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteCategoryBudgetUseCase {
	return &DeleteCategoryBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute removes the category's budget if one is set.
func (uc *DeleteCategoryBudgetUseCase) Execute(
	ctx context.Context,
	input DeleteCategoryBudgetInput,
) error {
	existing, err := uc.budgetRepo.FindCategoryBudget(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to find category budget: %w", err)
	}
	if existing == nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryBudgetNotFound,
			"no budget set for this category",
			domainerror.ErrCategoryBudgetNotFound,
		)
	}
	if err := uc.budgetRepo.DeleteCategoryBudget(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category budget: %w", err)
	}
	return nil
}

// GetCategoryBudgetInput represents the input for reading a category budget.
type GetCategoryBudgetInput struct {
	CategoryID uuid.UUID
}

// GetCategoryBudgetOutput represents the output of reading a category budget.
// Budget is nil when none is set.
type GetCategoryBudgetOutput struct {
	Budget *entity.CategoryBudget
}

// GetCategoryBudgetUseCase handles reading the budget of one category.
type GetCategoryBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetCategoryBudgetUseCase creates a new GetCategoryBudgetUseCase instance.
func NewGetCategoryBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetCategoryBudgetUseCase {
	return &GetCategoryBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute reads the category's budget, nil when unset.
func (uc *GetCategoryBudgetUseCase) Execute(
	ctx context.Context,
	input GetCategoryBudgetInput,
) (*GetCategoryBudgetOutput, error) {
	b, err := uc.budgetRepo.FindCategoryBudget(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category budget: %w", err)
	}
	return &GetCategoryBudgetOutput{Budget: b}, nil
}
