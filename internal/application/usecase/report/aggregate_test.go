package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func TestAggregateByCategory(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	food := &entity.Category{ID: uuid.New(), Name: "Food", Type: entity.CategoryTypeExpense}
	rent := &entity.Category{ID: uuid.New(), Name: "Rent", Type: entity.CategoryTypeExpense}
	index := NewCategoryIndex([]*entity.Category{food, rent})

	t.Run("sums per resolved category in first-seen order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(day, 10, "", &food.ID),
			expenseOn(day, 700, "", &rent.ID),
			expenseOn(day, 5, "", &food.ID),
		}

		totals := AggregateByCategory(transactions, index, nil)
		if len(totals) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(totals))
		}
		if totals[0].Name != "Food" || !totals[0].Value.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected Food=15 first, got %s=%s", totals[0].Name, totals[0].Value)
		}
		if totals[1].Name != "Rent" || !totals[1].Value.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected Rent=700, got %s=%s", totals[1].Name, totals[1].Value)
		}
	})

	t.Run("dangling and missing references group as uncategorized", func(t *testing.T) {
		dangling := uuid.New()
		transactions := []*entity.Transaction{
			expenseOn(day, 10, "", nil),
			expenseOn(day, 20, "", &dangling),
		}

		totals := AggregateByCategory(transactions, index, nil)
		if len(totals) != 1 {
			t.Fatalf("expected 1 group, got %d", len(totals))
		}
		if totals[0].Name != UncategorizedLabel {
			t.Errorf("expected %q group, got %q", UncategorizedLabel, totals[0].Name)
		}
		if !totals[0].Value.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected 30, got %s", totals[0].Value)
		}
	})

	t.Run("transfers are excluded", func(t *testing.T) {
		transactions := []*entity.Transaction{
			transferOn(day, 500),
			expenseOn(day, 10, "", &food.ID),
		}

		totals := AggregateByCategory(transactions, index, nil)
		if len(totals) != 1 {
			t.Fatalf("expected 1 group, got %d", len(totals))
		}
		if !totals[0].Value.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected 10, got %s", totals[0].Value)
		}
	})

	t.Run("resolver translates group labels", func(t *testing.T) {
		transactions := []*entity.Transaction{expenseOn(day, 10, "", &food.ID)}

		totals := AggregateByCategory(transactions, index, func(name string) string {
			return "x-" + name
		})
		if totals[0].Name != "x-Food" {
			t.Errorf("expected resolved label, got %q", totals[0].Name)
		}
	})

	t.Run("empty log yields no groups", func(t *testing.T) {
		totals := AggregateByCategory(nil, index, nil)
		if len(totals) != 0 {
			t.Errorf("expected no groups, got %d", len(totals))
		}
	})
}

func TestAggregateByDate(t *testing.T) {
	t.Run("buckets by local day with separate income and expense sums", func(t *testing.T) {
		transactions := []*entity.Transaction{
			incomeOn(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), 100, ""),
			expenseOn(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), 40, "", nil),
			expenseOn(time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), 5, "", nil),
		}

		totals := AggregateByDate(transactions, time.UTC)
		if len(totals) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(totals))
		}
		if totals[0].Date != "2024-03-10" {
			t.Errorf("expected ascending order, got %q first", totals[0].Date)
		}
		if !totals[0].Income.Equal(decimal.NewFromInt(100)) || !totals[0].Expense.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected income=100 expense=40, got %s/%s", totals[0].Income, totals[0].Expense)
		}
		if !totals[1].Expense.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected expense=5 on the second day, got %s", totals[1].Expense)
		}
	})

	t.Run("transfers contribute to neither sum", func(t *testing.T) {
		transactions := []*entity.Transaction{
			transferOn(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), 999),
		}

		totals := AggregateByDate(transactions, time.UTC)
		if len(totals) != 0 {
			t.Errorf("expected no buckets, got %d", len(totals))
		}
	})

	t.Run("day boundary follows the given location", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		// 22:00 UTC is already the next day at UTC+5.
		transactions := []*entity.Transaction{
			expenseOn(time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC), 10, "", nil),
		}

		totals := AggregateByDate(transactions, loc)
		if len(totals) != 1 || totals[0].Date != "2024-03-11" {
			t.Errorf("expected bucket 2024-03-11, got %+v", totals)
		}
	})
}
