// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	Name          string
	Type          entity.CategoryType
	SubCategories []string
}

// CreateCategoryOutput represents the output of creating a category.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute creates a new category. Name and type together are unique,
// compared case-insensitively; sub-category labels are deduplicated the
// same way.
func (uc *CreateCategoryUseCase) Execute(
	ctx context.Context,
	input CreateCategoryInput,
) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateNameAndType(name, input.Type); err != nil {
		return nil, err
	}

	existing, err := uc.categoryRepo.FindByNameAndType(ctx, name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDuplicateCategory,
			"category already exists",
			domainerror.ErrDuplicateCategory,
		)
	}

	cat := entity.NewCategory(name, input.Type, nil)
	for _, sub := range input.SubCategories {
		if label := strings.TrimSpace(sub); label != "" {
			cat.AddSubCategory(label)
		}
	}

	if err := uc.categoryRepo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &CreateCategoryOutput{Category: cat}, nil
}

// validateNameAndType checks the shared category identity inputs.
func validateNameAndType(name string, categoryType entity.CategoryType) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if !entity.IsValidCategoryType(categoryType) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"unknown category type",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}
