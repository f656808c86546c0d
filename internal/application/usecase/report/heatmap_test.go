package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func TestBuildHeatmap(t *testing.T) {
	today := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("covers the trailing window oldest first", func(t *testing.T) {
		cells := BuildHeatmap(nil, today)
		if len(cells) != HeatmapDays {
			t.Fatalf("expected %d cells, got %d", HeatmapDays, len(cells))
		}
		if cells[len(cells)-1].Date != "2024-03-10" {
			t.Errorf("expected last cell to be today, got %q", cells[len(cells)-1].Date)
		}
		first := today.AddDate(0, 0, -(HeatmapDays - 1)).Format("2006-01-02")
		if cells[0].Date != first {
			t.Errorf("expected first cell %q, got %q", first, cells[0].Date)
		}
	})

	t.Run("empty log yields all neutral zero cells", func(t *testing.T) {
		cells := BuildHeatmap(nil, today)
		for _, cell := range cells {
			if cell.Kind != DayKindNeutral || cell.Intensity != 0 || !cell.Net.IsZero() {
				t.Fatalf("expected neutral zero cell, got %+v", cell)
			}
		}
	})

	t.Run("classifies surplus and deficit days", func(t *testing.T) {
		transactions := []*entity.Transaction{
			incomeOn(time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), 100, ""),
			expenseOn(time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), 50, "", nil),
		}

		cells := BuildHeatmap(transactions, today)
		byDate := map[string]HeatmapCell{}
		for _, cell := range cells {
			byDate[cell.Date] = cell
		}

		surplus := byDate["2024-03-09"]
		if surplus.Kind != DayKindSurplus || !surplus.Net.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected surplus 100, got %+v", surplus)
		}
		deficit := byDate["2024-03-08"]
		if deficit.Kind != DayKindDeficit || !deficit.Net.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected deficit -50, got %+v", deficit)
		}
	})

	t.Run("intensity scales against the window maximum per sign", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), 100, "", nil),
			expenseOn(time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), 25, "", nil),
			expenseOn(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), 1, "", nil),
		}

		cells := BuildHeatmap(transactions, today)
		byDate := map[string]HeatmapCell{}
		for _, cell := range cells {
			byDate[cell.Date] = cell
		}

		if got := byDate["2024-03-09"].Intensity; got != 4 {
			t.Errorf("expected the maximum day at intensity 4, got %d", got)
		}
		if got := byDate["2024-03-08"].Intensity; got != 1 {
			t.Errorf("expected 25/100 at intensity 1, got %d", got)
		}
		if got := byDate["2024-03-07"].Intensity; got != 1 {
			t.Errorf("expected tiny activity clamped to intensity 1, got %d", got)
		}
	})

	t.Run("activity outside the window does not affect scaling", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(today.AddDate(0, 0, -HeatmapDays-5), 100000, "", nil),
			expenseOn(time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), 10, "", nil),
		}

		cells := BuildHeatmap(transactions, today)
		for _, cell := range cells {
			if cell.Date == "2024-03-09" && cell.Intensity != 4 {
				t.Errorf("expected the only in-window day at intensity 4, got %d", cell.Intensity)
			}
		}
	})
}

func TestScaleIntensity(t *testing.T) {
	cases := []struct {
		name      string
		magnitude int64
		max       int64
		want      int
	}{
		{"maximum maps to 4", 100, 100, 4},
		{"just over three quarters maps to 4", 80, 100, 4},
		{"half maps to 2", 50, 100, 2},
		{"tiny magnitude clamps to 1", 1, 1000, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scaleIntensity(decimal.NewFromInt(tc.magnitude), decimal.NewFromInt(tc.max))
			if got != tc.want {
				t.Errorf("scaleIntensity(%d, %d) = %d, want %d", tc.magnitude, tc.max, got, tc.want)
			}
		})
	}
}
