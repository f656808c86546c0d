package comparison

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryFilter optionally narrows a comparison to one category and, within
// it, one sub-category. The zero value selects everything.
type CategoryFilter struct {
	CategoryID  *uuid.UUID
	SubCategory string
}

// IsActive reports whether a category narrowing is set.
func (f CategoryFilter) IsActive() bool { return f.CategoryID != nil }

// matches reports whether the transaction passes the narrowing. Transfers
// carry no category, so any active filter excludes them.
func (f CategoryFilter) matches(tx *entity.Transaction) bool {
	if !f.IsActive() {
		return true
	}
	if tx.CategoryID == nil || *tx.CategoryID != *f.CategoryID {
		return false
	}
	if f.SubCategory != "" && !strings.EqualFold(tx.SubCategory, f.SubCategory) {
		return false
	}
	return true
}

// RangeMetrics summarizes one side of a comparison.
type RangeMetrics struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Savings      decimal.Decimal `json:"savings"`
	Transactions int             `json:"transactions"`
}

// ComputeRangeMetrics sums income and expense over the transactions whose
// local day falls inside the range and that pass the category filter.
// Savings is income minus expense. The transaction count covers every
// selected entry; transfers are counted but contribute to neither sum.
func ComputeRangeMetrics(
	transactions []*entity.Transaction,
	dateRange DateRange,
	filter CategoryFilter,
	loc *time.Location,
) RangeMetrics {
	if loc == nil {
		loc = time.Local
	}

	metrics := RangeMetrics{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Savings: decimal.Zero,
	}
	for _, tx := range transactions {
		if !dateRange.Contains(tx.Date, loc) || !filter.matches(tx) {
			continue
		}
		metrics.Transactions++
		switch tx.Type {
		case entity.TransactionTypeIncome:
			metrics.Income = metrics.Income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			metrics.Expense = metrics.Expense.Add(tx.Amount)
		}
	}
	metrics.Savings = metrics.Income.Sub(metrics.Expense)
	return metrics
}
