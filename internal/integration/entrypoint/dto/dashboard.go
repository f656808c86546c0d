package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/dashboard"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
)

// DashboardResponse represents the dashboard overview response.
type DashboardResponse struct {
	MonthlyIncome               decimal.Decimal            `json:"monthly_income"`
	MonthlyExpenses             decimal.Decimal            `json:"monthly_expenses"`
	LastMonthSamePeriodExpenses decimal.Decimal            `json:"last_month_same_period_expenses"`
	CombinedTotal               decimal.Decimal            `json:"combined_total"`
	RemainingForChart           decimal.Decimal            `json:"remaining_for_chart"`
	Health                      int                        `json:"health"`
	SpendingChart               []report.CategoryTotal     `json:"spending_chart"`
	SpentByCategory             map[string]decimal.Decimal `json:"spent_by_category"`
	Recent                      []TransactionResponse      `json:"recent"`
}

// ToDashboardResponse converts a dashboard overview output to its DTO.
func ToDashboardResponse(output *dashboard.GetOverviewOutput) DashboardResponse {
	spent := make(map[string]decimal.Decimal, len(output.SpentByCategory))
	for id, amount := range output.SpentByCategory {
		spent[id.String()] = amount
	}

	recent := make([]TransactionResponse, len(output.Recent))
	for i, item := range output.Recent {
		recent[i] = ToTransactionResponse(item.Transaction)
		if item.Category != nil {
			recent[i].CategoryName = item.Category.Name
		}
	}

	return DashboardResponse{
		MonthlyIncome:               output.MonthlyIncome,
		MonthlyExpenses:             output.MonthlyExpenses,
		LastMonthSamePeriodExpenses: output.LastMonthSamePeriodExpenses,
		CombinedTotal:               output.CombinedTotal,
		RemainingForChart:           output.RemainingForChart,
		Health:                      output.Health,
		SpendingChart:               output.SpendingChart,
		SpentByCategory:             spent,
		Recent:                      recent,
	}
}
