package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// ResolveOrCreateInput represents the input for resolving a category by
// name and type, creating it when absent. SubCategory, when set, is
// appended to the resolved category unless an equal label (ignoring case)
// is already present.
type ResolveOrCreateInput struct {
	Name        string
	Type        entity.CategoryType
	SubCategory string
}

// ResolveOrCreateOutput represents the output of resolving a category.
type ResolveOrCreateOutput struct {
	Category *entity.Category
	// Created reports whether the category was created by this call.
	Created bool
	// SubCategoryAdded reports whether the sub-category label was appended.
	SubCategoryAdded bool
}

// ResolveOrCreateUseCase resolves a (name, type) pair to a category,
// creating the category and appending the sub-category as needed. It is
// idempotent: repeating a call changes nothing and resolves to the same
// category.
type ResolveOrCreateUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewResolveOrCreateUseCase creates a new ResolveOrCreateUseCase instance.
func NewResolveOrCreateUseCase(
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *ResolveOrCreateUseCase {
	return &ResolveOrCreateUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute resolves or creates the category, then ensures the sub-category.
func (uc *ResolveOrCreateUseCase) Execute(
	ctx context.Context,
	input ResolveOrCreateInput,
) (*ResolveOrCreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateNameAndType(name, input.Type); err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.FindByNameAndType(ctx, name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	output := &ResolveOrCreateOutput{}
	if cat == nil {
		cat = entity.NewCategory(name, input.Type, nil)
		if err := uc.categoryRepo.Create(ctx, cat); err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		output.Created = true
	}

	if label := strings.TrimSpace(input.SubCategory); label != "" {
		if cat.AddSubCategory(label) {
			if err := uc.categoryRepo.Update(ctx, cat); err != nil {
				return nil, fmt.Errorf("failed to update category: %w", err)
			}
			output.SubCategoryAdded = true
		}
	}

	if output.Created || output.SubCategoryAdded {
		invalidateCache(ctx, uc.cache)
	}
	output.Category = cat
	return output, nil
}

// AddSubCategoryInput represents the input for appending a sub-category to
// an existing category.
type AddSubCategoryInput struct {
	CategoryID uuid.UUID
	Label      string
}

// AddSubCategoryOutput represents the output of appending a sub-category.
type AddSubCategoryOutput struct {
	Category *entity.Category
	Added    bool
}

// AddSubCategoryUseCase handles appending a sub-category label.
type AddSubCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewAddSubCategoryUseCase creates a new AddSubCategoryUseCase instance.
func NewAddSubCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *AddSubCategoryUseCase {
	return &AddSubCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute appends the label to the category unless already present.
func (uc *AddSubCategoryUseCase) Execute(
	ctx context.Context,
	input AddSubCategoryInput,
) (*AddSubCategoryOutput, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSubCategoryRequired,
			"sub-category label is required",
			domainerror.ErrSubCategoryRequired,
		)
	}

	cat, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
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

	added := cat.AddSubCategory(label)
	if added {
		if err := uc.categoryRepo.Update(ctx, cat); err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
		invalidateCache(ctx, uc.cache)
	}
	return &AddSubCategoryOutput{Category: cat, Added: added}, nil
}
