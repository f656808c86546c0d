package comparison

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func txOn(txType entity.TransactionType, date time.Time, amount int64, categoryID *uuid.UUID, subCategory string) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		CategoryID:  categoryID,
		SubCategory: subCategory,
	}
}

func TestComputeRangeMetrics(t *testing.T) {
	r := DateRange{Start: day(2024, 3, 4), End: day(2024, 3, 10)}

	t.Run("sums income and expense with savings as the difference", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeIncome, day(2024, 3, 5), 1000, nil, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 6), 300, nil, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 7), 100, nil, ""),
		}

		m := ComputeRangeMetrics(transactions, r, CategoryFilter{}, time.UTC)
		if !m.Income.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected income 1000, got %s", m.Income)
		}
		if !m.Expense.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected expense 400, got %s", m.Expense)
		}
		if !m.Savings.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected savings 600, got %s", m.Savings)
		}
		if m.Transactions != 3 {
			t.Errorf("expected 3 transactions, got %d", m.Transactions)
		}
	})

	t.Run("transfers are counted but contribute to neither sum", func(t *testing.T) {
		from := uuid.New()
		to := uuid.New()
		transfer := &entity.Transaction{
			ID:            uuid.New(),
			Type:          entity.TransactionTypeTransfer,
			Amount:        decimal.NewFromInt(500),
			Date:          day(2024, 3, 5),
			FromAccountID: &from,
			ToAccountID:   &to,
		}

		m := ComputeRangeMetrics([]*entity.Transaction{transfer}, r, CategoryFilter{}, time.UTC)
		if m.Transactions != 1 {
			t.Errorf("expected the transfer counted, got %d", m.Transactions)
		}
		if !m.Income.IsZero() || !m.Expense.IsZero() {
			t.Errorf("expected zero sums, got income=%s expense=%s", m.Income, m.Expense)
		}
	})

	t.Run("transactions outside the range are ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeExpense, day(2024, 3, 3), 50, nil, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 11), 60, nil, ""),
		}

		m := ComputeRangeMetrics(transactions, r, CategoryFilter{}, time.UTC)
		if m.Transactions != 0 {
			t.Errorf("expected nothing selected, got %d", m.Transactions)
		}
	})

	t.Run("empty log yields all zeros", func(t *testing.T) {
		m := ComputeRangeMetrics(nil, r, CategoryFilter{}, time.UTC)
		if !m.Income.IsZero() || !m.Expense.IsZero() || !m.Savings.IsZero() || m.Transactions != 0 {
			t.Errorf("expected zero metrics, got %+v", m)
		}
	})
}

func TestCategoryFilter(t *testing.T) {
	food := uuid.New()
	rent := uuid.New()
	r := DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 31)}

	transactions := []*entity.Transaction{
		txOn(entity.TransactionTypeExpense, day(2024, 3, 5), 10, &food, "Snacks"),
		txOn(entity.TransactionTypeExpense, day(2024, 3, 6), 20, &food, "Restaurants"),
		txOn(entity.TransactionTypeExpense, day(2024, 3, 7), 700, &rent, ""),
		txOn(entity.TransactionTypeExpense, day(2024, 3, 8), 5, nil, ""),
	}

	t.Run("category filter narrows to one category", func(t *testing.T) {
		m := ComputeRangeMetrics(transactions, r, CategoryFilter{CategoryID: &food}, time.UTC)
		if m.Transactions != 2 || !m.Expense.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected 2 transactions summing 30, got %d/%s", m.Transactions, m.Expense)
		}
	})

	t.Run("sub-category narrows further case-insensitively", func(t *testing.T) {
		m := ComputeRangeMetrics(transactions, r, CategoryFilter{CategoryID: &food, SubCategory: "snacks"}, time.UTC)
		if m.Transactions != 1 || !m.Expense.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected the snacks entry only, got %d/%s", m.Transactions, m.Expense)
		}
	})

	t.Run("active filter excludes uncategorized entries and transfers", func(t *testing.T) {
		from := uuid.New()
		to := uuid.New()
		withTransfer := append(transactions, &entity.Transaction{
			ID:            uuid.New(),
			Type:          entity.TransactionTypeTransfer,
			Amount:        decimal.NewFromInt(100),
			Date:          day(2024, 3, 9),
			FromAccountID: &from,
			ToAccountID:   &to,
		})

		m := ComputeRangeMetrics(withTransfer, r, CategoryFilter{CategoryID: &food}, time.UTC)
		if m.Transactions != 2 {
			t.Errorf("expected only the food entries, got %d", m.Transactions)
		}
	})
}
