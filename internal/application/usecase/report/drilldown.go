package report

import (
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// DrillDownKind selects which dimension a drill-down narrows by.
type DrillDownKind string

const (
	DrillDownCategory DrillDownKind = "category"
	DrillDownDate     DrillDownKind = "date"
)

// IsValidDrillDownKind reports whether the given kind is known.
func IsValidDrillDownKind(k DrillDownKind) bool {
	return k == DrillDownCategory || k == DrillDownDate
}

// DrillDown narrows a report to a single chart group: one category display
// label or one local calendar day. The zero value means no drill-down.
type DrillDown struct {
	Kind  DrillDownKind
	Value string
}

// IsActive reports whether a drill-down selection is set.
func (d DrillDown) IsActive() bool { return d.Kind != "" }

// Toggle applies a new selection against the current one. Selecting the
// already-active group clears the drill-down; anything else replaces it.
func (d DrillDown) Toggle(next DrillDown) DrillDown {
	if d == next {
		return DrillDown{}
	}
	return next
}

// Apply returns the subset of transactions belonging to the drilled-down
// group. An inactive drill-down returns the input unchanged. Category
// drill-down matches the resolved display label, so the uncategorized
// sentinel selects every transaction without a resolvable category;
// transfers never belong to a category group. Date drill-down matches the
// local calendar-day key.
func (d DrillDown) Apply(
	transactions []*entity.Transaction,
	categories CategoryIndex,
	resolve NameResolver,
	loc *time.Location,
) []*entity.Transaction {
	if !d.IsActive() {
		return transactions
	}
	if loc == nil {
		loc = time.Local
	}

	result := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		switch d.Kind {
		case DrillDownCategory:
			if tx.IsTransfer() {
				continue
			}
			if strings.EqualFold(DisplayName(tx, categories, resolve), d.Value) {
				result = append(result, tx)
			}
		case DrillDownDate:
			if tx.LocalDateKey(loc) == d.Value {
				result = append(result, tx)
			}
		}
	}
	return result
}
