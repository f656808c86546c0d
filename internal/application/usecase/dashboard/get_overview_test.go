package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLastMonthSamePeriodEnd(t *testing.T) {
	t.Run("maps to the same day of the previous month", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		end := lastMonthSamePeriodEnd(now, time.UTC)
		want := time.Date(2024, 2, 15, 23, 59, 59, 0, time.UTC)
		if !end.Equal(want) {
			t.Errorf("expected %s, got %s", want, end)
		}
	})

	t.Run("clamps to the last day of a shorter previous month", func(t *testing.T) {
		now := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)
		end := lastMonthSamePeriodEnd(now, time.UTC)
		want := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
		if !end.Equal(want) {
			t.Errorf("expected clamp to %s, got %s", want, end)
		}
	})

	t.Run("january looks back into december", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
		end := lastMonthSamePeriodEnd(now, time.UTC)
		want := time.Date(2023, 12, 10, 23, 59, 59, 0, time.UTC)
		if !end.Equal(want) {
			t.Errorf("expected %s, got %s", want, end)
		}
	})
}

func TestRemainingForChart(t *testing.T) {
	t.Run("budget minus spend when a budget is set", func(t *testing.T) {
		got := remainingForChart(decimal.NewFromInt(1000), decimal.NewFromInt(2000), decimal.NewFromInt(300))
		if !got.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected 700, got %s", got)
		}
	})

	t.Run("overrun goes negative", func(t *testing.T) {
		got := remainingForChart(decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(1200))
		if !got.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected -200, got %s", got)
		}
	})

	t.Run("without a budget falls back to savings", func(t *testing.T) {
		got := remainingForChart(decimal.Zero, decimal.NewFromInt(2000), decimal.NewFromInt(800))
		if !got.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected 1200, got %s", got)
		}
	})

	t.Run("savings fallback is floored at zero", func(t *testing.T) {
		got := remainingForChart(decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(800))
		if !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}

func TestHealthScore(t *testing.T) {
	cases := []struct {
		name     string
		budget   int64
		expenses int64
		want     int
	}{
		{"unset budget always scores 100", 0, 500, 100},
		{"untouched budget scores 100", 1000, 0, 100},
		{"half spent scores 50", 1000, 500, 50},
		{"fully spent scores 0", 1000, 1000, 0},
		{"overrun is floored at 0", 1000, 1500, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := healthScore(decimal.NewFromInt(tc.budget), decimal.NewFromInt(tc.expenses))
			if got != tc.want {
				t.Errorf("healthScore(%d, %d) = %d, want %d", tc.budget, tc.expenses, got, tc.want)
			}
		})
	}
}
