// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch persists a batch of transactions in one operation.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// Update replaces a transaction in place, keeping its ID.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a transaction by its ID.
	// Returns nil without error when no such transaction exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves the full transaction log sorted by date descending.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// ClearCategoryReferences detaches all transactions from the given
	// category, clearing category and sub-category and appending the
	// marker to each affected note. Returns the number of rows touched.
	ClearCategoryReferences(ctx context.Context, categoryID uuid.UUID, noteMarker string) (int64, error)
}
