package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func expenseOn(date time.Time, amount int64, note string, categoryID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		Type:       entity.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(amount),
		Date:       date,
		Note:       note,
		CategoryID: categoryID,
	}
}

func incomeOn(date time.Time, amount int64, note string) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Type:   entity.TransactionTypeIncome,
		Amount: decimal.NewFromInt(amount),
		Date:   date,
		Note:   note,
	}
}

func transferOn(date time.Time, amount int64) *entity.Transaction {
	from := uuid.New()
	to := uuid.New()
	return &entity.Transaction{
		ID:            uuid.New(),
		Type:          entity.TransactionTypeTransfer,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		FromAccountID: &from,
		ToAccountID:   &to,
	}
}

func TestFilterTransactions_Ranges(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	today := expenseOn(time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC), 10, "coffee", nil)
	thisWeek := expenseOn(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), 20, "lunch", nil)
	thisMonth := expenseOn(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 30, "rent", nil)
	lastMonth := expenseOn(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), 40, "old", nil)
	transactions := []*entity.Transaction{today, thisWeek, thisMonth, lastMonth}

	t.Run("all selects everything", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll}, nil, now)
		if len(result) != 4 {
			t.Errorf("expected 4 transactions, got %d", len(result))
		}
	})

	t.Run("today selects the current calendar day only", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeToday}, nil, now)
		if len(result) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(result))
		}
		if result[0].ID != today.ID {
			t.Error("expected today's transaction")
		}
	})

	t.Run("week selects the trailing 7 whole days", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeWeek}, nil, now)
		if len(result) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(result))
		}
	})

	t.Run("month selects the current calendar month", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeMonth}, nil, now)
		if len(result) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(result))
		}
	})

	t.Run("result is sorted by date descending", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll}, nil, now)
		for i := 1; i < len(result); i++ {
			if result[i].Date.After(result[i-1].Date) {
				t.Error("expected descending date order")
			}
		}
	})
}

func TestFilterTransactions_CustomRange(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tx := expenseOn(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), 10, "", nil)
	transactions := []*entity.Transaction{tx}

	t.Run("inclusive bounds", func(t *testing.T) {
		start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		result := FilterTransactions(transactions, FilterCriteria{
			Range:       RangeCustom,
			CustomStart: &start,
			CustomEnd:   &end,
		}, nil, now)
		if len(result) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(result))
		}
	})

	t.Run("end before start selects nothing", func(t *testing.T) {
		start := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		result := FilterTransactions(transactions, FilterCriteria{
			Range:       RangeCustom,
			CustomStart: &start,
			CustomEnd:   &end,
		}, nil, now)
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d", len(result))
		}
	})

	t.Run("missing bound falls back to all", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		result := FilterTransactions(transactions, FilterCriteria{
			Range:       RangeCustom,
			CustomStart: &start,
		}, nil, now)
		if len(result) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(result))
		}
	})
}

func TestFilterTransactions_Search(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries", Type: entity.CategoryTypeExpense}
	index := NewCategoryIndex([]*entity.Category{groceries})

	byNote := expenseOn(now, 10, "weekly shop", nil)
	byCategory := expenseOn(now, 20, "", &groceries.ID)
	byAmount := expenseOn(now, 1234, "", nil)
	transactions := []*entity.Transaction{byNote, byCategory, byAmount}

	t.Run("matches note case-insensitively", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll, SearchTerm: "WEEKLY"}, index, now)
		if len(result) != 1 || result[0].ID != byNote.ID {
			t.Errorf("expected the note match, got %d results", len(result))
		}
	})

	t.Run("matches category name", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll, SearchTerm: "grocer"}, index, now)
		if len(result) != 1 || result[0].ID != byCategory.ID {
			t.Errorf("expected the category match, got %d results", len(result))
		}
	})

	t.Run("matches stringified amount", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll, SearchTerm: "1234"}, index, now)
		if len(result) != 1 || result[0].ID != byAmount.ID {
			t.Errorf("expected the amount match, got %d results", len(result))
		}
	})

	t.Run("blank term matches everything", func(t *testing.T) {
		result := FilterTransactions(transactions, FilterCriteria{Range: RangeAll, SearchTerm: "   "}, index, now)
		if len(result) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(result))
		}
	})
}
