package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// GetByCategoryInput represents the input for the by-category report.
type GetByCategoryInput struct {
	Criteria  FilterCriteria
	DrillDown DrillDown
}

// GetByCategoryOutput represents the output of the by-category report.
type GetByCategoryOutput struct {
	Groups []CategoryTotal `json:"groups"`
}

// GetByCategoryUseCase handles the by-category aggregation report.
type GetByCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.ReportCache
	resolve         NameResolver
	now             func() time.Time
}

// NewGetByCategoryUseCase creates a new GetByCategoryUseCase instance.
func NewGetByCategoryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
	resolve NameResolver,
) *GetByCategoryUseCase {
	return &GetByCategoryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
		resolve:         resolve,
		now:             time.Now,
	}
}

// Execute computes the by-category totals for the filtered transaction log.
func (uc *GetByCategoryUseCase) Execute(
	ctx context.Context,
	input GetByCategoryInput,
) (*GetByCategoryOutput, error) {
	if err := validateCriteria(input.Criteria, input.DrillDown); err != nil {
		return nil, err
	}

	key, cacheable := cacheKey(ctx, uc.cache, "by-category",
		criteriaKey(input.Criteria), string(input.DrillDown.Kind), input.DrillDown.Value)
	if cacheable {
		var cached GetByCategoryOutput
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

	output := &GetByCategoryOutput{
		Groups: AggregateByCategory(filtered, index, uc.resolve),
	}
	if cacheable {
		cacheStore(ctx, uc.cache, key, output)
	}
	return output, nil
}

// validateCriteria checks the shared filter and drill-down inputs.
func validateCriteria(criteria FilterCriteria, drillDown DrillDown) error {
	if criteria.Range != "" && !IsValidQuickRange(criteria.Range) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidRange,
			"unknown range value",
			domainerror.ErrInvalidRange,
		)
	}
	if drillDown.Kind != "" && !IsValidDrillDownKind(drillDown.Kind) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDrillDownKind,
			"unknown drill-down kind",
			domainerror.ErrInvalidDrillDownKind,
		)
	}
	return nil
}
