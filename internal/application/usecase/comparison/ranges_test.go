package comparison

import (
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyRanges(t *testing.T) {
	today := time.Date(2024, 3, 10, 16, 45, 0, 0, time.UTC)
	a, b := WeeklyRanges(today)

	t.Run("range A is the trailing 7 days ending today", func(t *testing.T) {
		if !a.Start.Equal(day(2024, 3, 4)) || !a.End.Equal(day(2024, 3, 10)) {
			t.Errorf("expected 2024-03-04..2024-03-10, got %s..%s", a.Start, a.End)
		}
	})

	t.Run("range B is the 7 days before range A", func(t *testing.T) {
		if !b.Start.Equal(day(2024, 2, 26)) || !b.End.Equal(day(2024, 3, 3)) {
			t.Errorf("expected 2024-02-26..2024-03-03, got %s..%s", b.Start, b.End)
		}
	})

	t.Run("ranges tile with no gap and no overlap", func(t *testing.T) {
		if !b.End.AddDate(0, 0, 1).Equal(a.Start) {
			t.Errorf("expected B to end the day before A starts, got B.End=%s A.Start=%s", b.End, a.Start)
		}
	})
}

func TestMonthlyRanges(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	a, b := MonthlyRanges(today)

	t.Run("range A runs from the first of the month through today", func(t *testing.T) {
		if !a.Start.Equal(day(2024, 3, 1)) || !a.End.Equal(day(2024, 3, 10)) {
			t.Errorf("expected 2024-03-01..2024-03-10, got %s..%s", a.Start, a.End)
		}
	})

	t.Run("range B is the entire previous month", func(t *testing.T) {
		if !b.Start.Equal(day(2024, 2, 1)) || !b.End.Equal(day(2024, 2, 29)) {
			t.Errorf("expected 2024-02-01..2024-02-29, got %s..%s", b.Start, b.End)
		}
	})

	t.Run("january compares against december of the previous year", func(t *testing.T) {
		a, b := MonthlyRanges(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		if !a.Start.Equal(day(2024, 1, 1)) {
			t.Errorf("expected A to start 2024-01-01, got %s", a.Start)
		}
		if !b.Start.Equal(day(2023, 12, 1)) || !b.End.Equal(day(2023, 12, 31)) {
			t.Errorf("expected 2023-12-01..2023-12-31, got %s..%s", b.Start, b.End)
		}
	})
}

func TestMonthRange(t *testing.T) {
	t.Run("spans the full calendar month", func(t *testing.T) {
		r := MonthRange(2024, time.February, time.UTC)
		if !r.Start.Equal(day(2024, 2, 1)) || !r.End.Equal(day(2024, 2, 29)) {
			t.Errorf("expected 2024-02-01..2024-02-29, got %s..%s", r.Start, r.End)
		}
	})
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: day(2024, 3, 4), End: day(2024, 3, 10)}

	t.Run("bounds are inclusive", func(t *testing.T) {
		if !r.Contains(time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC), time.UTC) {
			t.Error("expected start day included")
		}
		if !r.Contains(time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC), time.UTC) {
			t.Error("expected end day included")
		}
	})

	t.Run("outside days are excluded", func(t *testing.T) {
		if r.Contains(day(2024, 3, 3), time.UTC) || r.Contains(day(2024, 3, 11), time.UTC) {
			t.Error("expected days outside the range excluded")
		}
	})
}
