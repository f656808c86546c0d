package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CalendarDayKind classifies a calendar day cell.
type CalendarDayKind string

const (
	CalendarDayNeutral CalendarDayKind = "neutral"
	CalendarDaySurplus CalendarDayKind = "surplus"
	CalendarDayDeficit CalendarDayKind = "deficit"
	// CalendarDayEven marks a day with activity whose income and expense
	// cancel out exactly.
	CalendarDayEven CalendarDayKind = "even"
)

// CalendarDay is one day cell of the monthly calendar view.
type CalendarDay struct {
	Date      string          `json:"date"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Balance   decimal.Decimal `json:"balance"`
	Kind      CalendarDayKind `json:"kind"`
	Intensity int             `json:"intensity"`
}

// BuildCalendar produces one cell per calendar day of the given month from
// already-aggregated day totals. Intensity (1..4) scales each active day's
// absolute balance against the maximum absolute balance observed anywhere
// in the supplied data set, not just the visible month; the maximum
// defaults to 1 when the data set is empty. Days without activity are
// neutral with intensity 0.
func BuildCalendar(totals []DateTotal, year int, month time.Month) []CalendarDay {
	byDate := make(map[string]DateTotal, len(totals))
	maxBalance := decimal.Zero
	for _, t := range totals {
		byDate[t.Date] = t
		balance := t.Income.Sub(t.Expense)
		if balance.Abs().GreaterThan(maxBalance) {
			maxBalance = balance.Abs()
		}
	}
	if maxBalance.IsZero() {
		maxBalance = decimal.NewFromInt(1)
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		cell := CalendarDay{
			Date:    key,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Balance: decimal.Zero,
			Kind:    CalendarDayNeutral,
		}

		if t, ok := byDate[key]; ok {
			cell.Income = t.Income
			cell.Expense = t.Expense
			cell.Balance = t.Income.Sub(t.Expense)
			cell.Intensity = scaleIntensity(cell.Balance.Abs(), maxBalance)

			switch {
			case cell.Balance.IsPositive():
				cell.Kind = CalendarDaySurplus
			case cell.Balance.IsNegative():
				cell.Kind = CalendarDayDeficit
			default:
				cell.Kind = CalendarDayEven
			}
		}

		days = append(days, cell)
	}
	return days
}
