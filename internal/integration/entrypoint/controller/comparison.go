package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/comparison"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ComparisonController handles the period comparison endpoint.
type ComparisonController struct {
	compareUseCase *comparison.ComparePeriodsUseCase
}

// NewComparisonController creates a new comparison controller instance.
func NewComparisonController(compareUseCase *comparison.ComparePeriodsUseCase) *ComparisonController {
	return &ComparisonController{compareUseCase: compareUseCase}
}

// Compare handles GET /comparison requests. The preset defaults to weekly;
// the custom preset reads month_a and month_b as YYYY-MM values.
func (c *ComparisonController) Compare(ctx *gin.Context) {
	input := comparison.ComparePeriodsInput{
		Preset: comparison.Preset(ctx.DefaultQuery("preset", string(comparison.PresetWeekly))),
	}

	if input.Preset == comparison.PresetCustom {
		var ok bool
		if input.MonthA, ok = c.parseMonth(ctx, "month_a"); !ok {
			return
		}
		if input.MonthB, ok = c.parseMonth(ctx, "month_b"); !ok {
			return
		}
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.Filter.CategoryID = &categoryID
		input.Filter.SubCategory = ctx.Query("sub_category")
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleComparisonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// parseMonth reads a YYYY-MM query parameter, writing the error response
// itself on failure.
func (c *ComparisonController) parseMonth(ctx *gin.Context, param string) (comparison.YearMonth, bool) {
	value := ctx.Query(param)
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + param + ", expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonthFormat),
		})
		return comparison.YearMonth{}, false
	}
	return comparison.YearMonth{Year: parsed.Year(), Month: parsed.Month()}, true
}

// handleComparisonError maps comparison errors to HTTP responses.
func (c *ComparisonController) handleComparisonError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
