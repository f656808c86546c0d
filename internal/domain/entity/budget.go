// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBudget is a per-category monthly spending ceiling. At most one
// exists per category; it is removed together with its category.
type CategoryBudget struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCategoryBudget creates a new CategoryBudget entity.
func NewCategoryBudget(categoryID uuid.UUID, amount decimal.Decimal) *CategoryBudget {
	now := time.Now().UTC()

	return &CategoryBudget{
		CategoryID: categoryID,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GlobalBudgetKey is the settings key under which the single process-wide
// monthly spending ceiling is stored. A zero amount means unset.
const GlobalBudgetKey = "global_budget"

// CategoryBudgetStatus pairs a category budget with the amount already
// spent against it in the current period.
type CategoryBudgetStatus struct {
	Category *Category
	Budget   *CategoryBudget
	Spent    decimal.Decimal
}
