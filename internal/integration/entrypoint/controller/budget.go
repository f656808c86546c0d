package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	getGlobalUseCase      *budget.GetGlobalBudgetUseCase
	setGlobalUseCase      *budget.SetGlobalBudgetUseCase
	getCategoryUseCase    *budget.GetCategoryBudgetUseCase
	upsertCategoryUseCase *budget.UpsertCategoryBudgetUseCase
	deleteCategoryUseCase *budget.DeleteCategoryBudgetUseCase
	overviewUseCase       *budget.GetOverviewUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getGlobalUseCase *budget.GetGlobalBudgetUseCase,
	setGlobalUseCase *budget.SetGlobalBudgetUseCase,
	getCategoryUseCase *budget.GetCategoryBudgetUseCase,
	upsertCategoryUseCase *budget.UpsertCategoryBudgetUseCase,
	deleteCategoryUseCase *budget.DeleteCategoryBudgetUseCase,
	overviewUseCase *budget.GetOverviewUseCase,
) *BudgetController {
	return &BudgetController{
		getGlobalUseCase:      getGlobalUseCase,
		setGlobalUseCase:      setGlobalUseCase,
		getCategoryUseCase:    getCategoryUseCase,
		upsertCategoryUseCase: upsertCategoryUseCase,
		deleteCategoryUseCase: deleteCategoryUseCase,
		overviewUseCase:       overviewUseCase,
	}
}

// GetGlobal handles GET /budget requests.
func (c *BudgetController) GetGlobal(ctx *gin.Context) {
	output, err := c.getGlobalUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetResponse{Amount: output.Amount})
}

// SetGlobal handles PUT /budget requests.
func (c *BudgetController) SetGlobal(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := c.setGlobalUseCase.Execute(ctx.Request.Context(), budget.SetGlobalBudgetInput{Amount: req.Amount}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetResponse{Amount: req.Amount})
}

// GetCategory handles GET /budgets/categories/:categoryId requests.
func (c *BudgetController) GetCategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.getCategoryUseCase.Execute(ctx.Request.Context(), budget.GetCategoryBudgetInput{CategoryID: categoryID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	if output.Budget == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "no budget set for this category",
			Code:  string(domainerror.ErrCodeCategoryBudgetNotFound),
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetResponse{Amount: output.Budget.Amount})
}

// UpsertCategory handles PUT /budgets/categories/:categoryId requests.
func (c *BudgetController) UpsertCategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.upsertCategoryUseCase.Execute(ctx.Request.Context(), budget.UpsertCategoryBudgetInput{
		CategoryID: categoryID,
		Amount:     req.Amount,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetResponse{Amount: output.Budget.Amount})
}

// DeleteCategory handles DELETE /budgets/categories/:categoryId requests.
func (c *BudgetController) DeleteCategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if err := c.deleteCategoryUseCase.Execute(ctx.Request.Context(), budget.DeleteCategoryBudgetInput{CategoryID: categoryID}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Overview handles GET /budget/overview requests.
func (c *BudgetController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(output))
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var bdgErr *domainerror.BudgetError
	if errors.As(err, &bdgErr) {
		ctx.JSON(c.statusCodeFor(bdgErr.Code), dto.ErrorResponse{
			Error: bdgErr.Message,
			Code:  string(bdgErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps budget error codes to HTTP status codes.
func (c *BudgetController) statusCodeFor(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetCategoryNotFound, domainerror.ErrCodeCategoryBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNegativeBudget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
