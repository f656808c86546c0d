package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// GetByDateInput represents the input for the by-date report.
type GetByDateInput struct {
	Criteria  FilterCriteria
	DrillDown DrillDown
}

// GetByDateOutput represents the output of the by-date report.
type GetByDateOutput struct {
	Days []DateTotal `json:"days"`
}

// GetByDateUseCase handles the by-date aggregation report.
type GetByDateUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.ReportCache
	resolve         NameResolver
	now             func() time.Time
}

// NewGetByDateUseCase creates a new GetByDateUseCase instance.
func NewGetByDateUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
	resolve NameResolver,
) *GetByDateUseCase {
	return &GetByDateUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
		resolve:         resolve,
		now:             time.Now,
	}
}

// Execute computes the per-day income/expense series for the filtered log.
func (uc *GetByDateUseCase) Execute(
	ctx context.Context,
	input GetByDateInput,
) (*GetByDateOutput, error) {
	if err := validateCriteria(input.Criteria, input.DrillDown); err != nil {
		return nil, err
	}

	key, cacheable := cacheKey(ctx, uc.cache, "by-date",
		criteriaKey(input.Criteria), string(input.DrillDown.Kind), input.DrillDown.Value)
	if cacheable {
		var cached GetByDateOutput
		if cacheLookup(ctx, uc.cache, key, &cached) {
			return &cached, nil
		}
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	now := uc.now()
	index := NewCategoryIndex(categories)
	filtered := FilterTransactions(transactions, input.Criteria, index, now)
	filtered = input.DrillDown.Apply(filtered, index, uc.resolve, now.Location())

	output := &GetByDateOutput{
		Days: AggregateByDate(filtered, now.Location()),
	}
	if cacheable {
		cacheStore(ctx, uc.cache, key, output)
	}
	return output, nil
}
