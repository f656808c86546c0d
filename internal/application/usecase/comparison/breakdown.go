package comparison

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BreakdownRow is one group of the expense breakdown, with its totals on
// both sides of the comparison and their difference.
type BreakdownRow struct {
	Name    string          `json:"name"`
	AmountA decimal.Decimal `json:"amountA"`
	AmountB decimal.Decimal `json:"amountB"`
	Diff    decimal.Decimal `json:"diff"`
}

// BuildBreakdown groups expense transactions of both ranges and produces a
// row per group key seen in either side, diff = amountA − amountB, sorted
// descending by amountA. With an active category filter the grouping key is
// the sub-category (falling back to the general bucket); otherwise it is the
// resolved category display name (falling back to uncategorized). A group
// present in only one range still gets a row with zero on the other side.
func BuildBreakdown(
	transactions []*entity.Transaction,
	rangeA, rangeB DateRange,
	filter CategoryFilter,
	categories report.CategoryIndex,
	resolve report.NameResolver,
	loc *time.Location,
) []BreakdownRow {
	if loc == nil {
		loc = time.Local
	}
	if resolve == nil {
		resolve = report.IdentityResolver
	}

	totalsA := map[string]decimal.Decimal{}
	totalsB := map[string]decimal.Decimal{}
	order := []string{}
	seen := map[string]bool{}

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !filter.matches(tx) {
			continue
		}
		inA := rangeA.Contains(tx.Date, loc)
		inB := rangeB.Contains(tx.Date, loc)
		if !inA && !inB {
			continue
		}

		var key string
		if filter.IsActive() {
			key = tx.SubCategory
			if key == "" {
				key = resolve(report.GeneralLabel)
			}
		} else {
			key = report.DisplayName(tx, categories, resolve)
		}

		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
		if inA {
			totalsA[key] = totalsA[key].Add(tx.Amount)
		}
		if inB {
			totalsB[key] = totalsB[key].Add(tx.Amount)
		}
	}

	rows := make([]BreakdownRow, 0, len(order))
	for _, key := range order {
		a := totalsA[key]
		b := totalsB[key]
		rows = append(rows, BreakdownRow{
			Name:    key,
			AmountA: a,
			AmountB: b,
			Diff:    a.Sub(b),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AmountA.GreaterThan(rows[j].AmountA)
	})
	return rows
}
