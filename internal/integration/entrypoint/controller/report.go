package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	byCategoryUseCase *report.GetByCategoryUseCase
	byDateUseCase     *report.GetByDateUseCase
	heatmapUseCase    *report.GetHeatmapUseCase
	calendarUseCase   *report.GetCalendarUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	byCategoryUseCase *report.GetByCategoryUseCase,
	byDateUseCase *report.GetByDateUseCase,
	heatmapUseCase *report.GetHeatmapUseCase,
	calendarUseCase *report.GetCalendarUseCase,
) *ReportController {
	return &ReportController{
		byCategoryUseCase: byCategoryUseCase,
		byDateUseCase:     byDateUseCase,
		heatmapUseCase:    heatmapUseCase,
		calendarUseCase:   calendarUseCase,
	}
}

// ByCategory handles GET /reports/by-category requests.
func (c *ReportController) ByCategory(ctx *gin.Context) {
	criteria, drillDown, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context(), report.GetByCategoryInput{
		Criteria:  criteria,
		DrillDown: drillDown,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ByCategoryResponse{Groups: output.Groups})
}

// ByDate handles GET /reports/by-date requests.
func (c *ReportController) ByDate(ctx *gin.Context) {
	criteria, drillDown, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	output, err := c.byDateUseCase.Execute(ctx.Request.Context(), report.GetByDateInput{
		Criteria:  criteria,
		DrillDown: drillDown,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ByDateResponse{Days: output.Days})
}

// Heatmap handles GET /reports/heatmap requests.
func (c *ReportController) Heatmap(ctx *gin.Context) {
	output, err := c.heatmapUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.HeatmapResponse{Cells: output.Cells})
}

// Calendar handles GET /reports/calendar requests.
func (c *ReportController) Calendar(ctx *gin.Context) {
	var input report.GetCalendarInput
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		input.Year = year
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month",
			})
			return
		}
		input.Month = time.Month(month)
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CalendarResponse{
		Year:  output.Year,
		Month: output.Month,
		Days:  output.Days,
	})
}

// parseFilter reads filter criteria and the drill-down selector from query
// parameters, writing the error response itself on failure.
func (c *ReportController) parseFilter(ctx *gin.Context) (report.FilterCriteria, report.DrillDown, bool) {
	criteria := report.FilterCriteria{
		SearchTerm: ctx.Query("search"),
		Range:      report.QuickRange(ctx.DefaultQuery("range", string(report.RangeAll))),
	}
	drillDown := report.DrillDown{
		Kind:  report.DrillDownKind(ctx.Query("drill_kind")),
		Value: ctx.Query("drill_value"),
	}

	for _, bound := range []struct {
		param string
		dest  **time.Time
	}{
		{"start", &criteria.CustomStart},
		{"end", &criteria.CustomEnd},
	} {
		value := ctx.Query(bound.param)
		if value == "" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid " + bound.param + " date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return criteria, drillDown, false
		}
		*bound.dest = &parsed
	}
	return criteria, drillDown, true
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		status := http.StatusBadRequest
		if rptErr.Code == domainerror.ErrCodeReportInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
