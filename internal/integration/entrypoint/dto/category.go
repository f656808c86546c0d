package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	Type          string   `json:"type" binding:"required,oneof=expense income"`
	SubCategories []string `json:"sub_categories,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	SubCategories []string `json:"sub_categories,omitempty"`
}

// ResolveCategoryRequest represents the request body for resolve-or-create.
type ResolveCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	SubCategory string `json:"sub_category,omitempty"`
}

// AddSubCategoryRequest represents the request body for appending a sub-category.
type AddSubCategoryRequest struct {
	Label string `json:"label" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	SubCategories []string  `json:"sub_categories"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ResolveCategoryResponse represents the response of resolve-or-create.
type ResolveCategoryResponse struct {
	Category         CategoryResponse `json:"category"`
	Created          bool             `json:"created"`
	SubCategoryAdded bool             `json:"sub_category_added"`
}

// DeleteCategoryResponse represents the response of deleting a category.
type DeleteCategoryResponse struct {
	DetachedTransactions int64 `json:"detached_transactions"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	subCategories := cat.SubCategories
	if subCategories == nil {
		subCategories = []string{}
	}
	return CategoryResponse{
		ID:            cat.ID.String(),
		Name:          cat.Name,
		Type:          string(cat.Type),
		SubCategories: subCategories,
		CreatedAt:     cat.CreatedAt,
		UpdatedAt:     cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	result := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		result[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: result}
}
