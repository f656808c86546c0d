package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for updating a category. Name and
// sub-categories can change; the type is fixed at creation because existing
// transactions were validated against it.
type UpdateCategoryInput struct {
	ID            uuid.UUID
	Name          string
	SubCategories []string
}

// UpdateCategoryOutput represents the output of updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute updates an existing category's name and sub-category list.
func (uc *UpdateCategoryUseCase) Execute(
	ctx context.Context,
	input UpdateCategoryInput,
) (*UpdateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	cat, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if cat == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if !strings.EqualFold(cat.Name, name) {
		duplicate, err := uc.categoryRepo.FindByNameAndType(ctx, name, cat.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if duplicate != nil && duplicate.ID != cat.ID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeDuplicateCategory,
				"category already exists",
				domainerror.ErrDuplicateCategory,
			)
		}
	}

	cat.Name = name
	cat.SubCategories = []string{}
	for _, sub := range input.SubCategories {
		if label := strings.TrimSpace(sub); label != "" {
			cat.AddSubCategory(label)
		}
	}
	cat.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &UpdateCategoryOutput{Category: cat}, nil
}
