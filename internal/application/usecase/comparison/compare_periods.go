package comparison

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// YearMonth selects one full calendar month for the custom preset.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ComparePeriodsInput represents the input for a period comparison.
// MonthA and MonthB are only consulted for the custom preset.
type ComparePeriodsInput struct {
	Preset Preset
	MonthA YearMonth
	MonthB YearMonth
	Filter CategoryFilter
}

// ComparePeriodsOutput represents the output of a period comparison.
type ComparePeriodsOutput struct {
	RangeA    DateRange      `json:"rangeA"`
	RangeB    DateRange      `json:"rangeB"`
	MetricsA  RangeMetrics   `json:"metricsA"`
	MetricsB  RangeMetrics   `json:"metricsB"`
	Breakdown []BreakdownRow `json:"breakdown"`
}

// ComparePeriodsUseCase handles period-over-period comparison.
type ComparePeriodsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	resolve         report.NameResolver
	now             func() time.Time
}

// NewComparePeriodsUseCase creates a new ComparePeriodsUseCase instance.
func NewComparePeriodsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	resolve report.NameResolver,
) *ComparePeriodsUseCase {
	return &ComparePeriodsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		resolve:         resolve,
		now:             time.Now,
	}
}

// Execute resolves the two comparison ranges, computes their metrics and
// builds the expense breakdown across both.
func (uc *ComparePeriodsUseCase) Execute(
	ctx context.Context,
	input ComparePeriodsInput,
) (*ComparePeriodsOutput, error) {
	now := uc.now()
	loc := now.Location()

	rangeA, rangeB, err := uc.resolveRanges(input, now)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	index := report.NewCategoryIndex(categories)

	return &ComparePeriodsOutput{
		RangeA:    rangeA,
		RangeB:    rangeB,
		MetricsA:  ComputeRangeMetrics(transactions, rangeA, input.Filter, loc),
		MetricsB:  ComputeRangeMetrics(transactions, rangeB, input.Filter, loc),
		Breakdown: BuildBreakdown(transactions, rangeA, rangeB, input.Filter, index, uc.resolve, loc),
	}, nil
}

func (uc *ComparePeriodsUseCase) resolveRanges(
	input ComparePeriodsInput,
	now time.Time,
) (DateRange, DateRange, error) {
	switch input.Preset {
	case PresetWeekly:
		a, b := WeeklyRanges(now)
		return a, b, nil
	case PresetMonthly:
		a, b := MonthlyRanges(now)
		return a, b, nil
	case PresetCustom:
		for _, ym := range []YearMonth{input.MonthA, input.MonthB} {
			if ym.Year == 0 || ym.Month < time.January || ym.Month > time.December {
				return DateRange{}, DateRange{}, domainerror.NewReportError(
					domainerror.ErrCodeInvalidMonthFormat,
					"custom comparison needs a valid year-month per side",
					domainerror.ErrInvalidMonthFormat,
				)
			}
		}
		loc := now.Location()
		a := MonthRange(input.MonthA.Year, input.MonthA.Month, loc)
		b := MonthRange(input.MonthB.Year, input.MonthB.Month, loc)
		return a, b, nil
	default:
		return DateRange{}, DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidComparisonPreset,
			"unknown comparison preset",
			domainerror.ErrInvalidComparisonPreset,
		)
	}
}
