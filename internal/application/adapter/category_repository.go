// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a category by its ID.
	// Returns nil without error when no such category exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByNameAndType retrieves a category by name (case-insensitive) and type.
	// Returns nil without error when no such category exists.
	FindByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (*entity.Category, error)

	// FindAll retrieves all categories ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Category, error)
}
