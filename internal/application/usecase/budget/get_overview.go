package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// GetOverviewOutput represents the output of the budget overview.
type GetOverviewOutput struct {
	GlobalBudget decimal.Decimal
	// SpentThisMonth is the month-to-date expense total across all categories.
	SpentThisMonth decimal.Decimal
	// Categories lists every category that has a budget set, with its
	// month-to-date spend.
	Categories []*entity.CategoryBudgetStatus
}

// GetOverviewUseCase handles the budget overview: the global ceiling and
// every category budget against current-month spending.
type GetOverviewUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute assembles the budget overview for the current calendar month.
// Budgets whose category has meanwhile disappeared are skipped rather than
// reported, matching the missing-reference tolerance of the reports.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	global, err := uc.budgetRepo.GetGlobalBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read global budget: %w", err)
	}
	budgets, err := uc.budgetRepo.FindAllCategoryBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list category budgets: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	now := uc.now()
	spentTotal, spentByCategory := MonthToDateSpend(transactions, now)

	index := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	statuses := make([]*entity.CategoryBudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		cat, ok := index[b.CategoryID]
		if !ok {
			continue
		}
		statuses = append(statuses, &entity.CategoryBudgetStatus{
			Category: cat,
			Budget:   b,
			Spent:    spentByCategory[b.CategoryID],
		})
	}

	return &GetOverviewOutput{
		GlobalBudget:   global,
		SpentThisMonth: spentTotal,
		Categories:     statuses,
	}, nil
}

// MonthToDateSpend sums expense amounts in now's calendar month, in total
// and per category. Transfers and income contribute nothing.
func MonthToDateSpend(
	transactions []*entity.Transaction,
	now time.Time,
) (decimal.Decimal, map[uuid.UUID]decimal.Decimal) {
	loc := now.Location()
	total := decimal.Zero
	byCategory := map[uuid.UUID]decimal.Decimal{}

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		d := tx.Date.In(loc)
		if d.Month() != now.Month() || d.Year() != now.Year() {
			continue
		}
		total = total.Add(tx.Amount)
		if tx.CategoryID != nil {
			byCategory[*tx.CategoryID] = byCategory[*tx.CategoryID].Add(tx.Amount)
		}
	}
	return total, byCategory
}
