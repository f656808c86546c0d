package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// GetHeatmapOutput represents the output of the spending heatmap report.
type GetHeatmapOutput struct {
	Cells []HeatmapCell `json:"cells"`
}

// GetHeatmapUseCase handles the trailing 105-day net-flow heatmap.
type GetHeatmapUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
	now             func() time.Time
}

// NewGetHeatmapUseCase creates a new GetHeatmapUseCase instance.
func NewGetHeatmapUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Execute builds the heatmap grid ending at the current local day.
func (uc *GetHeatmapUseCase) Execute(ctx context.Context) (*GetHeatmapOutput, error) {
	now := uc.now()

	// The grid shifts at local midnight, so today's date key is part of
	// the cache identity.
	key, cacheable := cacheKey(ctx, uc.cache, "heatmap", now.Format("2006-01-02"))
	if cacheable {
		var cached GetHeatmapOutput
		if cacheLookup(ctx, uc.cache, key, &cached) {
			return &cached, nil
		}
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &GetHeatmapOutput{Cells: BuildHeatmap(transactions, now)}
	if cacheable {
		cacheStore(ctx, uc.cache, key, output)
	}
	return output, nil
}
