package dto

import (
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
)

// ByCategoryResponse represents the by-category report response.
type ByCategoryResponse struct {
	Groups []report.CategoryTotal `json:"groups"`
}

// ByDateResponse represents the by-date report response.
type ByDateResponse struct {
	Days []report.DateTotal `json:"days"`
}

// HeatmapResponse represents the spending heatmap response.
type HeatmapResponse struct {
	Cells []report.HeatmapCell `json:"cells"`
}

// CalendarResponse represents the monthly calendar response.
type CalendarResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Days  []report.CalendarDay `json:"days"`
}
