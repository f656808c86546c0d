package comparison

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func TestBuildBreakdown(t *testing.T) {
	food := &entity.Category{ID: uuid.New(), Name: "Food", Type: entity.CategoryTypeExpense}
	rent := &entity.Category{ID: uuid.New(), Name: "Rent", Type: entity.CategoryTypeExpense}
	index := report.NewCategoryIndex([]*entity.Category{food, rent})

	rangeA := DateRange{Start: day(2024, 3, 4), End: day(2024, 3, 10)}
	rangeB := DateRange{Start: day(2024, 2, 26), End: day(2024, 3, 3)}

	t.Run("rows cover every group seen in either range", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeExpense, day(2024, 3, 5), 100, &food.ID, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 2, 27), 60, &food.ID, ""),
			// Rent appears only in range B; it still gets a row.
			txOn(entity.TransactionTypeExpense, day(2024, 2, 28), 700, &rent.ID, ""),
		}

		rows := BuildBreakdown(transactions, rangeA, rangeB, CategoryFilter{}, index, nil, time.UTC)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}

		byName := map[string]BreakdownRow{}
		for _, row := range rows {
			byName[row.Name] = row
		}

		foodRow := byName["Food"]
		if !foodRow.AmountA.Equal(decimal.NewFromInt(100)) || !foodRow.AmountB.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected Food 100/60, got %s/%s", foodRow.AmountA, foodRow.AmountB)
		}
		if !foodRow.Diff.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected diff 40, got %s", foodRow.Diff)
		}

		rentRow := byName["Rent"]
		if !rentRow.AmountA.IsZero() || !rentRow.AmountB.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected Rent 0/700, got %s/%s", rentRow.AmountA, rentRow.AmountB)
		}
	})

	t.Run("rows are sorted descending by the range A amount", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeExpense, day(2024, 3, 5), 10, &food.ID, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 6), 900, &rent.ID, ""),
		}

		rows := BuildBreakdown(transactions, rangeA, rangeB, CategoryFilter{}, index, nil, time.UTC)
		if rows[0].Name != "Rent" {
			t.Errorf("expected Rent first, got %q", rows[0].Name)
		}
	})

	t.Run("income and transfers never appear", func(t *testing.T) {
		from := uuid.New()
		to := uuid.New()
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeIncome, day(2024, 3, 5), 1000, nil, ""),
			{
				ID:            uuid.New(),
				Type:          entity.TransactionTypeTransfer,
				Amount:        decimal.NewFromInt(500),
				Date:          day(2024, 3, 5),
				FromAccountID: &from,
				ToAccountID:   &to,
			},
		}

		rows := BuildBreakdown(transactions, rangeA, rangeB, CategoryFilter{}, index, nil, time.UTC)
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("active filter groups by sub-category with a general fallback", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txOn(entity.TransactionTypeExpense, day(2024, 3, 5), 10, &food.ID, "Snacks"),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 6), 20, &food.ID, ""),
			txOn(entity.TransactionTypeExpense, day(2024, 3, 7), 700, &rent.ID, ""),
		}

		rows := BuildBreakdown(transactions, rangeA, rangeB, CategoryFilter{CategoryID: &food.ID}, index, nil, time.UTC)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}

		byName := map[string]BreakdownRow{}
		for _, row := range rows {
			byName[row.Name] = row
		}
		if _, ok := byName["Snacks"]; !ok {
			t.Error("expected a Snacks row")
		}
		if row, ok := byName[report.GeneralLabel]; !ok || !row.AmountA.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected general bucket with 20, got %+v", row)
		}
	})
}
