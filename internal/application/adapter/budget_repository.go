// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// UpsertCategoryBudget creates or replaces the budget for a category.
	UpsertCategoryBudget(ctx context.Context, budget *entity.CategoryBudget) error

	// DeleteCategoryBudget removes the budget for a category, if any.
	DeleteCategoryBudget(ctx context.Context, categoryID uuid.UUID) error

	// FindCategoryBudget retrieves the budget for a category.
	// Returns nil without error when no budget is set.
	FindCategoryBudget(ctx context.Context, categoryID uuid.UUID) (*entity.CategoryBudget, error)

	// FindAllCategoryBudgets retrieves every category budget.
	FindAllCategoryBudgets(ctx context.Context) ([]*entity.CategoryBudget, error)

	// GetGlobalBudget retrieves the process-wide monthly budget. Zero means unset.
	GetGlobalBudget(ctx context.Context) (decimal.Decimal, error)

	// SetGlobalBudget stores the process-wide monthly budget.
	SetGlobalBudget(ctx context.Context, amount decimal.Decimal) error
}
