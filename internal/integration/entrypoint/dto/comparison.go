package dto

import (
	"github.com/pocket-ledger/backend/internal/application/usecase/comparison"
)

// ComparisonResponse represents the period comparison response.
type ComparisonResponse struct {
	RangeA    comparison.DateRange        `json:"range_a"`
	RangeB    comparison.DateRange        `json:"range_b"`
	MetricsA  comparison.RangeMetrics     `json:"metrics_a"`
	MetricsB  comparison.RangeMetrics     `json:"metrics_b"`
	Breakdown []comparison.BreakdownRow   `json:"breakdown"`
}

// ToComparisonResponse converts a comparison output to its response DTO.
func ToComparisonResponse(output *comparison.ComparePeriodsOutput) ComparisonResponse {
	return ComparisonResponse{
		RangeA:    output.RangeA,
		RangeB:    output.RangeB,
		MetricsA:  output.MetricsA,
		MetricsB:  output.MetricsB,
		Breakdown: output.Breakdown,
	}
}
