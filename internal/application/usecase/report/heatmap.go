package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// HeatmapWeeks is the fixed width of the spending heatmap's trailing window.
const HeatmapWeeks = 15

// HeatmapDays is the number of day cells in the heatmap grid.
const HeatmapDays = HeatmapWeeks * 7

// DayKind classifies a day cell by the sign of its net flow.
type DayKind string

const (
	DayKindNeutral DayKind = "neutral"
	DayKindSurplus DayKind = "surplus"
	DayKindDeficit DayKind = "deficit"
)

// HeatmapCell is one day of the spending heatmap. Intensity runs 0 (no
// activity) to 4, scaled against the window's maximum surplus or deficit
// depending on the cell's sign.
type HeatmapCell struct {
	Date      string          `json:"date"`
	Net       decimal.Decimal `json:"net"`
	Kind      DayKind         `json:"kind"`
	Intensity int             `json:"intensity"`
}

// BuildHeatmap computes the trailing 105-day net-flow grid ending at today,
// oldest day first. Per day, net = income − expense; transfers are invisible.
// Each signed maximum defaults to 1 when the window has no day of that sign,
// so the intensity ratio is always defined.
func BuildHeatmap(transactions []*entity.Transaction, today time.Time) []HeatmapCell {
	loc := today.Location()

	nets := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		key := tx.LocalDateKey(loc)
		switch tx.Type {
		case entity.TransactionTypeIncome:
			nets[key] = nets[key].Add(tx.Amount)
		case entity.TransactionTypeExpense:
			nets[key] = nets[key].Sub(tx.Amount)
		}
	}

	// Scaling maxima are taken from the visible window only.
	maxSurplus := decimal.Zero
	maxDeficit := decimal.Zero
	for i := 0; i < HeatmapDays; i++ {
		key := localMidnight(today, loc).AddDate(0, 0, -i).Format("2006-01-02")
		net := nets[key]
		if net.IsPositive() && net.GreaterThan(maxSurplus) {
			maxSurplus = net
		}
		if net.IsNegative() && net.Neg().GreaterThan(maxDeficit) {
			maxDeficit = net.Neg()
		}
	}
	if maxSurplus.IsZero() {
		maxSurplus = decimal.NewFromInt(1)
	}
	if maxDeficit.IsZero() {
		maxDeficit = decimal.NewFromInt(1)
	}

	cells := make([]HeatmapCell, 0, HeatmapDays)
	for i := HeatmapDays - 1; i >= 0; i-- {
		day := localMidnight(today, loc).AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		net := nets[key]

		cell := HeatmapCell{Date: key, Net: net, Kind: DayKindNeutral}
		switch {
		case net.IsPositive():
			cell.Kind = DayKindSurplus
			cell.Intensity = scaleIntensity(net, maxSurplus)
		case net.IsNegative():
			cell.Kind = DayKindDeficit
			cell.Intensity = scaleIntensity(net.Neg(), maxDeficit)
		}
		cells = append(cells, cell)
	}
	return cells
}

// scaleIntensity maps a positive magnitude onto levels 1..4 against max.
func scaleIntensity(magnitude, max decimal.Decimal) int {
	level := int(magnitude.Div(max).Mul(decimal.NewFromInt(4)).Ceil().IntPart())
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return level
}
