package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// The drill-down selector narrows the filtered list to one chart group,
// mirroring what a chart-slice click selects.
type ListTransactionsInput struct {
	Criteria  report.FilterCriteria
	DrillDown report.DrillDown
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles listing the filtered transaction log.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	resolve         report.NameResolver
	now             func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	resolve report.NameResolver,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		resolve:         resolve,
		now:             time.Now,
	}
}

// Execute filters the log, applies any drill-down, and pairs each entry
// with its resolved category. Dangling category references resolve to nil.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	now := uc.now()
	index := report.NewCategoryIndex(categories)
	filtered := report.FilterTransactions(transactions, input.Criteria, index, now)
	filtered = input.DrillDown.Apply(filtered, index, uc.resolve, now.Location())

	result := make([]*entity.TransactionWithCategory, 0, len(filtered))
	for _, tx := range filtered {
		item := &entity.TransactionWithCategory{Transaction: tx}
		if tx.CategoryID != nil {
			item.Category = index[*tx.CategoryID]
		}
		result = append(result, item)
	}
	return &ListTransactionsOutput{Transactions: result}, nil
}
