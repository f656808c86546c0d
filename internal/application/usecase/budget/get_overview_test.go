package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func TestMonthToDateSpend(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	food := uuid.New()

	expense := func(date time.Time, amount int64, categoryID *uuid.UUID) *entity.Transaction {
		return &entity.Transaction{
			ID:         uuid.New(),
			Type:       entity.TransactionTypeExpense,
			Amount:     decimal.NewFromInt(amount),
			Date:       date,
			CategoryID: categoryID,
		}
	}

	t.Run("sums current-month expenses with a per-category split", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), 100, &food),
			expense(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), 50, nil),
		}

		total, byCategory := MonthToDateSpend(transactions, now)
		if !total.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected total 150, got %s", total)
		}
		if !byCategory[food].Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100 for the category, got %s", byCategory[food])
		}
	})

	t.Run("other months and other types are ignored", func(t *testing.T) {
		income := &entity.Transaction{
			ID:     uuid.New(),
			Type:   entity.TransactionTypeIncome,
			Amount: decimal.NewFromInt(1000),
			Date:   time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		}
		transactions := []*entity.Transaction{
			expense(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), 40, &food),
			expense(time.Date(2023, 3, 5, 9, 0, 0, 0, time.UTC), 60, &food),
			income,
		}

		total, byCategory := MonthToDateSpend(transactions, now)
		if !total.IsZero() {
			t.Errorf("expected zero total, got %s", total)
		}
		if len(byCategory) != 0 {
			t.Errorf("expected empty split, got %v", byCategory)
		}
	})

	t.Run("empty log yields zeros", func(t *testing.T) {
		total, byCategory := MonthToDateSpend(nil, now)
		if !total.IsZero() || len(byCategory) != 0 {
			t.Errorf("expected zero spend, got %s / %v", total, byCategory)
		}
	})
}
