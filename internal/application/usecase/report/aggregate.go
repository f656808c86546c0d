package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryTotal is one slice of the by-category aggregation, ready for a
// pie/bar renderer.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DateTotal is one bucket of the by-date aggregation, ready for a
// time-series renderer.
type DateTotal struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// AggregateByCategory groups transactions by resolved category display name
// and sums their amounts. Transfers are excluded entirely. Groups appear in
// insertion order of first occurrence; renderers sort separately if needed.
func AggregateByCategory(
	transactions []*entity.Transaction,
	categories CategoryIndex,
	resolve NameResolver,
) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	order := []string{}

	for _, tx := range transactions {
		if tx.IsTransfer() {
			continue
		}
		name := DisplayName(tx, categories, resolve)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(tx.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		result = append(result, CategoryTotal{Name: name, Value: totals[name]})
	}
	return result
}

// AggregateByDate groups transactions into local calendar-day buckets and
// accumulates income and expense sums separately. Transfers contribute to
// neither. The result is sorted ascending by date for time-series use.
func AggregateByDate(transactions []*entity.Transaction, loc *time.Location) []DateTotal {
	if loc == nil {
		loc = time.Local
	}

	buckets := map[string]*DateTotal{}
	for _, tx := range transactions {
		if tx.IsTransfer() {
			continue
		}
		key := tx.LocalDateKey(loc)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &DateTotal{Date: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = bucket
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
	}

	result := make([]DateTotal, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
