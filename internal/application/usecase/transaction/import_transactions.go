package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ImportRow is one entry of a bulk import. Categories are referenced by
// name and created on the fly when absent, so a spreadsheet can be loaded
// without preparing the registry first. File parsing happens upstream; the
// rows arrive already decoded.
type ImportRow struct {
	Type         entity.TransactionType
	Amount       decimal.Decimal
	Date         time.Time
	Note         string
	AccountID    uuid.UUID
	CategoryName string
	SubCategory  string
}

// ImportTransactionsInput represents the input for a bulk import.
type ImportTransactionsInput struct {
	Rows []ImportRow
}

// ImportTransactionsOutput represents the output of a bulk import.
type ImportTransactionsOutput struct {
	Imported          int
	CategoriesCreated int
}

// ImportTransactionsUseCase handles appending a batch of ledger entries,
// resolving or creating their categories as it goes.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	resolveCategory *category.ResolveOrCreateUseCase
	cache           adapter.ReportCache
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	resolveCategory *category.ResolveOrCreateUseCase,
	cache adapter.ReportCache,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		resolveCategory: resolveCategory,
		cache:           cache,
	}
}

// Execute validates every row, resolves categories, and persists the batch
// in one operation. A single bad row rejects the whole import; partial
// loads would be invisible to the user.
func (uc *ImportTransactionsUseCase) Execute(
	ctx context.Context,
	input ImportTransactionsInput,
) (*ImportTransactionsOutput, error) {
	batch := make([]*entity.Transaction, 0, len(input.Rows))
	created := 0

	for i, row := range input.Rows {
		var categoryID *uuid.UUID
		subCategory := ""

		if row.CategoryName != "" {
			resolved, err := uc.resolveCategory.Execute(ctx, category.ResolveOrCreateInput{
				Name:        row.CategoryName,
				Type:        entity.CategoryType(row.Type),
				SubCategory: row.SubCategory,
			})
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			if resolved.Created {
				created++
			}
			categoryID = &resolved.Category.ID
			subCategory = row.SubCategory
		}

		tx := entity.NewTransaction(
			row.Type, row.Amount, row.Date, row.Note,
			row.AccountID, categoryID, subCategory,
		)
		if err := validateShape(tx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		batch = append(batch, tx)
	}

	if err := uc.transactionRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to persist import batch: %w", err)
	}
	invalidateCache(ctx, uc.cache)

	return &ImportTransactionsOutput{
		Imported:          len(batch),
		CategoriesCreated: created,
	}, nil
}
