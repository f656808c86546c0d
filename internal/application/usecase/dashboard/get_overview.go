// Package dashboard contains the dashboard overview use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// recentLimit caps the recent-activity list of the overview.
const recentLimit = 15

// GetOverviewOutput represents the output of the dashboard overview.
type GetOverviewOutput struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	// LastMonthSamePeriodExpenses covers the previous month from its first
	// day through the current day-of-month, clamped to the previous month's
	// length so a March 30th compares against a full February.
	LastMonthSamePeriodExpenses decimal.Decimal
	// CombinedTotal is the all-time balance across every account; transfers
	// net to zero and so never move it.
	CombinedTotal decimal.Decimal
	// RemainingForChart is what is left of the monthly budget (or of the
	// month's income when no budget is set). It goes negative when the
	// budget is overrun, so a gauge can show the overshoot.
	RemainingForChart decimal.Decimal
	// Health scores the month against the global budget: 100 untouched,
	// 0 fully spent or worse. Always 100 when no budget is set.
	Health int
	// SpendingChart breaks the month's expenses down by category display name.
	SpendingChart []report.CategoryTotal
	// SpentByCategory keys month-to-date expense sums by category ID for
	// budget tracking.
	SpentByCategory map[uuid.UUID]decimal.Decimal
	Recent          []*entity.TransactionWithCategory
}

// GetOverviewUseCase assembles the dashboard in one pass over the log.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetRepo      adapter.BudgetRepository
	resolve         report.NameResolver
	now             func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
	resolve report.NameResolver,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		resolve:         resolve,
		now:             time.Now,
	}
}

// Execute computes every dashboard stat for the current moment.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	globalBudget, err := uc.budgetRepo.GetGlobalBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read global budget: %w", err)
	}

	now := uc.now()
	loc := now.Location()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	lastMonthEnd := lastMonthSamePeriodEnd(now, loc)

	index := report.NewCategoryIndex(categories)

	monthlyIncome := decimal.Zero
	monthlyExpenses := decimal.Zero
	lastMonthExpenses := decimal.Zero
	combinedTotal := decimal.Zero
	spentByCategory := map[uuid.UUID]decimal.Decimal{}
	monthExpenseEntries := []*entity.Transaction{}

	for _, tx := range transactions {
		d := tx.Date.In(loc)
		switch tx.Type {
		case entity.TransactionTypeIncome:
			combinedTotal = combinedTotal.Add(tx.Amount)
			if !d.Before(monthStart) {
				monthlyIncome = monthlyIncome.Add(tx.Amount)
			}
		case entity.TransactionTypeExpense:
			combinedTotal = combinedTotal.Sub(tx.Amount)
			if !d.Before(monthStart) {
				monthlyExpenses = monthlyExpenses.Add(tx.Amount)
				monthExpenseEntries = append(monthExpenseEntries, tx)
				if tx.CategoryID != nil {
					spentByCategory[*tx.CategoryID] = spentByCategory[*tx.CategoryID].Add(tx.Amount)
				}
			}
			if !d.Before(lastMonthStart) && !d.After(lastMonthEnd) {
				lastMonthExpenses = lastMonthExpenses.Add(tx.Amount)
			}
		}
	}

	return &GetOverviewOutput{
		MonthlyIncome:               monthlyIncome,
		MonthlyExpenses:             monthlyExpenses,
		LastMonthSamePeriodExpenses: lastMonthExpenses,
		CombinedTotal:               combinedTotal,
		RemainingForChart:           remainingForChart(globalBudget, monthlyIncome, monthlyExpenses),
		Health:                      healthScore(globalBudget, monthlyExpenses),
		SpendingChart:               report.AggregateByCategory(monthExpenseEntries, index, uc.resolve),
		SpentByCategory:             spentByCategory,
		Recent:                      recentActivity(transactions, index),
	}, nil
}

// recentActivity pairs the newest entries with their categories. The
// repository already returns the log date-descending.
func recentActivity(
	transactions []*entity.Transaction,
	index report.CategoryIndex,
) []*entity.TransactionWithCategory {
	limit := recentLimit
	if len(transactions) < limit {
		limit = len(transactions)
	}
	recent := make([]*entity.TransactionWithCategory, 0, limit)
	for _, tx := range transactions[:limit] {
		item := &entity.TransactionWithCategory{Transaction: tx}
		if tx.CategoryID != nil {
			item.Category = index[*tx.CategoryID]
		}
		recent = append(recent, item)
	}
	return recent
}

// lastMonthSamePeriodEnd resolves the instant closing the previous month's
// comparable window: the current day-of-month clamped to the previous
// month's length, at end of day.
func lastMonthSamePeriodEnd(now time.Time, loc *time.Location) time.Time {
	daysInLastMonth := time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, loc).Day()
	compareDay := now.Day()
	if compareDay > daysInLastMonth {
		compareDay = daysInLastMonth
	}
	return time.Date(now.Year(), now.Month()-1, compareDay, 23, 59, 59, 0, loc)
}

// remainingForChart mirrors the budget gauge: budget minus spend when a
// budget is set (allowed to go negative on overrun), otherwise the month's
// savings floored at zero.
func remainingForChart(budget, monthlyIncome, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if budget.IsPositive() {
		return budget.Sub(monthlyExpenses)
	}
	remaining := monthlyIncome.Sub(monthlyExpenses)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// healthScore is 100 - spent/budget*100 rounded, floored at zero; an unset
// budget always scores 100.
func healthScore(budget, monthlyExpenses decimal.Decimal) int {
	if !budget.IsPositive() {
		return 100
	}
	score := decimal.NewFromInt(100).Sub(
		monthlyExpenses.Div(budget).Mul(decimal.NewFromInt(100)),
	).Round(0)
	if score.IsNegative() {
		return 0
	}
	return int(score.IntPart())
}
