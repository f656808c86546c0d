package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// UncategorizedNoteMarker is appended to the note of every transaction that
// loses its category when that category is deleted, so the detachment stays
// visible in the entry itself.
const UncategorizedNoteMarker = "(Uncategorized)"

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryOutput represents the output of deleting a category.
type DeleteCategoryOutput struct {
	// DetachedTransactions is the number of transactions whose category
	// reference was cleared by the deletion.
	DetachedTransactions int64
}

// DeleteCategoryUseCase handles category deletion. Referencing transactions
// survive: their category and sub-category are cleared and the note gains
// the uncategorized marker. The category's budget goes with it.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	cache           adapter.ReportCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ReportCache,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		cache:           cache,
	}
}

// Execute deletes a category and detaches everything that referenced it.
func (uc *DeleteCategoryUseCase) Execute(
	ctx context.Context,
	input DeleteCategoryInput,
) (*DeleteCategoryOutput, error) {
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

	detached, err := uc.transactionRepo.ClearCategoryReferences(ctx, input.ID, UncategorizedNoteMarker)
	if err != nil {
		return nil, fmt.Errorf("failed to detach transactions: %w", err)
	}
	if err := uc.budgetRepo.DeleteCategoryBudget(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category budget: %w", err)
	}
	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &DeleteCategoryOutput{DetachedTransactions: detached}, nil
}
