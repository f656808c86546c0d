package report

import (
	"sort"
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// QuickRange is a named date window for the period filter.
type QuickRange string

const (
	RangeToday  QuickRange = "today"
	RangeWeek   QuickRange = "week"
	RangeMonth  QuickRange = "month"
	RangeAll    QuickRange = "all"
	RangeCustom QuickRange = "custom"
)

// IsValidQuickRange reports whether the given range value is known.
func IsValidQuickRange(r QuickRange) bool {
	switch r {
	case RangeToday, RangeWeek, RangeMonth, RangeAll, RangeCustom:
		return true
	}
	return false
}

// FilterCriteria selects a slice of the transaction log.
//
// SearchTerm is applied in addition to the range: a transaction matches when
// its note, stringified amount or resolved category name contains the term,
// case-insensitively. A custom range with either bound missing falls back
// to all.
type FilterCriteria struct {
	SearchTerm  string
	Range       QuickRange
	CustomStart *time.Time
	CustomEnd   *time.Time
}

// FilterTransactions returns the transactions matching the criteria, sorted
// by date descending. Day comparisons are local-midnight bounded in now's
// location: "today" is the current calendar day, "week" a trailing window of
// 7 whole days including today, "month" the current calendar month.
func FilterTransactions(
	transactions []*entity.Transaction,
	criteria FilterCriteria,
	categories CategoryIndex,
	now time.Time,
) []*entity.Transaction {
	loc := now.Location()
	todayMidnight := localMidnight(now, loc)

	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))

	result := make([]*entity.Transaction, 0, len(sorted))
	for _, tx := range sorted {
		if term != "" && !matchesSearch(tx, term, categories) {
			continue
		}
		if !inRange(tx, criteria, todayMidnight, now, loc) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// matchesSearch reports whether the transaction matches the lowercased term.
func matchesSearch(tx *entity.Transaction, term string, categories CategoryIndex) bool {
	if strings.Contains(strings.ToLower(tx.Note), term) {
		return true
	}
	if strings.Contains(tx.Amount.String(), term) {
		return true
	}
	if tx.CategoryID != nil {
		if c, ok := categories[*tx.CategoryID]; ok {
			if strings.Contains(strings.ToLower(c.Name), term) {
				return true
			}
		}
	}
	return false
}

// inRange reports whether the transaction falls inside the criteria's window.
func inRange(tx *entity.Transaction, criteria FilterCriteria, todayMidnight, now time.Time, loc *time.Location) bool {
	switch criteria.Range {
	case RangeToday:
		return localMidnight(tx.Date, loc).Equal(todayMidnight)
	case RangeWeek:
		// Trailing window of 7 whole days measured from local midnights,
		// not a rolling 168-hour window.
		weekStart := todayMidnight.AddDate(0, 0, -7)
		return !localMidnight(tx.Date, loc).Before(weekStart)
	case RangeMonth:
		d := tx.Date.In(loc)
		return d.Month() == now.Month() && d.Year() == now.Year()
	case RangeCustom:
		if criteria.CustomStart == nil || criteria.CustomEnd == nil {
			return true
		}
		day := localMidnight(tx.Date, loc)
		start := localMidnight(*criteria.CustomStart, loc)
		end := localMidnight(*criteria.CustomEnd, loc)
		return !day.Before(start) && !day.After(end)
	default:
		// RangeAll and anything unrecognized select everything.
		return true
	}
}

// localMidnight truncates an instant to its local calendar day start.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
