package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase           *category.ListCategoriesUseCase
	createUseCase         *category.CreateCategoryUseCase
	updateUseCase         *category.UpdateCategoryUseCase
	deleteUseCase         *category.DeleteCategoryUseCase
	resolveUseCase        *category.ResolveOrCreateUseCase
	addSubCategoryUseCase *category.AddSubCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	resolveUseCase *category.ResolveOrCreateUseCase,
	addSubCategoryUseCase *category.AddSubCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		resolveUseCase:        resolveUseCase,
		addSubCategoryUseCase: addSubCategoryUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:          req.Name,
		Type:          entity.CategoryType(req.Type),
		SubCategories: req.SubCategories,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:            categoryID,
		Name:          req.Name,
		SubCategories: req.SubCategories,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: categoryID})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteCategoryResponse{
		DetachedTransactions: output.DetachedTransactions,
	})
}

// Resolve handles POST /categories/resolve requests.
func (c *CategoryController) Resolve(ctx *gin.Context) {
	var req dto.ResolveCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), category.ResolveOrCreateInput{
		Name:        req.Name,
		Type:        entity.CategoryType(req.Type),
		SubCategory: req.SubCategory,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResolveCategoryResponse{
		Category:         dto.ToCategoryResponse(output.Category),
		Created:          output.Created,
		SubCategoryAdded: output.SubCategoryAdded,
	})
}

// AddSubCategory handles POST /categories/:id/subcategories requests.
func (c *CategoryController) AddSubCategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.AddSubCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addSubCategoryUseCase.Execute(ctx.Request.Context(), category.AddSubCategoryInput{
		CategoryID: categoryID,
		Label:      req.Label,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.statusCodeFor(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps category error codes to HTTP status codes.
func (c *CategoryController) statusCodeFor(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateCategory:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeSubCategoryRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
