package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// GetCalendarInput represents the input for the monthly calendar report.
// Year and Month default to the current local month when zero.
type GetCalendarInput struct {
	Year  int
	Month time.Month
}

// GetCalendarOutput represents the output of the monthly calendar report.
type GetCalendarOutput struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// GetCalendarUseCase handles the per-day calendar view of a month.
type GetCalendarUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
	now             func() time.Time
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Execute builds the calendar cells for the requested month. The intensity
// scale spans the whole transaction log, so two months render comparably.
func (uc *GetCalendarUseCase) Execute(
	ctx context.Context,
	input GetCalendarInput,
) (*GetCalendarOutput, error) {
	now := uc.now()
	year, month := input.Year, input.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonthFormat,
		)
	}

	key, cacheable := cacheKey(ctx, uc.cache, "calendar",
		strconv.Itoa(year), strconv.Itoa(int(month)))
	if cacheable {
		var cached GetCalendarOutput
		if cacheLookup(ctx, uc.cache, key, &cached) {
			return &cached, nil
		}
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := AggregateByDate(transactions, now.Location())
	output := &GetCalendarOutput{
		Year:  year,
		Month: int(month),
		Days:  BuildCalendar(totals, year, month),
	}
	if cacheable {
		cacheStore(ctx, uc.cache, key, output)
	}
	return output, nil
}
