// Package comparison contains the period-over-period comparison engine.
package comparison

import (
	"time"
)

// Preset names a built-in pair of comparison ranges.
type Preset string

const (
	PresetWeekly  Preset = "weekly"
	PresetMonthly Preset = "monthly"
	PresetCustom  Preset = "custom"
)

// IsValidPreset reports whether the given preset value is known.
func IsValidPreset(p Preset) bool {
	return p == PresetWeekly || p == PresetMonthly || p == PresetCustom
}

// DateRange is an inclusive window of whole local calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the instant's local calendar day falls inside the
// range. A range with End before Start contains nothing.
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	day := dayStart(t, loc)
	return !day.Before(r.Start) && !day.After(r.End)
}

// WeeklyRanges derives the weekly preset: range A is the 7-day inclusive
// trailing window ending today, range B the 7 days immediately before it.
// The two ranges tile with no gap and no overlap.
func WeeklyRanges(today time.Time) (a, b DateRange) {
	loc := today.Location()
	end := dayStart(today, loc)
	a = DateRange{Start: end.AddDate(0, 0, -6), End: end}
	b = DateRange{Start: end.AddDate(0, 0, -13), End: end.AddDate(0, 0, -7)}
	return a, b
}

// MonthlyRanges derives the monthly preset: range A runs from the first of
// the current month through today, range B is the entire previous month.
// Range B is deliberately not truncated to the same day-of-month, so the
// comparison is partial-month against full-month.
func MonthlyRanges(today time.Time) (a, b DateRange) {
	loc := today.Location()
	end := dayStart(today, loc)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	a = DateRange{Start: monthStart, End: end}
	b = DateRange{
		Start: monthStart.AddDate(0, -1, 0),
		End:   monthStart.AddDate(0, 0, -1),
	}
	return a, b
}

// MonthRange resolves a year-month value into the full calendar month, for
// the custom preset where each side is chosen independently.
func MonthRange(year int, month time.Month, loc *time.Location) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// dayStart truncates an instant to its local calendar day start.
func dayStart(t time.Time, loc *time.Location) time.Time {
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
