package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
)

// SetBudgetRequest represents the request body for setting a budget amount,
// global or per-category.
type SetBudgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BudgetResponse represents a budget amount in API responses.
type BudgetResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// CategoryBudgetResponse represents one category's budget with its
// month-to-date spend.
type CategoryBudgetResponse struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Budget       decimal.Decimal `json:"budget"`
	Spent        decimal.Decimal `json:"spent"`
}

// BudgetOverviewResponse represents the budget overview response.
type BudgetOverviewResponse struct {
	GlobalBudget   decimal.Decimal          `json:"global_budget"`
	SpentThisMonth decimal.Decimal          `json:"spent_this_month"`
	Categories     []CategoryBudgetResponse `json:"categories"`
}

// ToBudgetOverviewResponse converts a budget overview output to its DTO.
func ToBudgetOverviewResponse(output *budget.GetOverviewOutput) BudgetOverviewResponse {
	categories := make([]CategoryBudgetResponse, len(output.Categories))
	for i, status := range output.Categories {
		categories[i] = CategoryBudgetResponse{
			CategoryID:   status.Category.ID.String(),
			CategoryName: status.Category.Name,
			Budget:       status.Budget.Amount,
			Spent:        status.Spent,
		}
	}
	return BudgetOverviewResponse{
		GlobalBudget:   output.GlobalBudget,
		SpentThisMonth: output.SpentThisMonth,
		Categories:     categories,
	}
}
