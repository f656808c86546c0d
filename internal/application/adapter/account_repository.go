// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by ID. Transactions referencing it are
	// left untouched and become orphaned references.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an account by its ID.
	// Returns nil without error when no such account exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves all accounts ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Account, error)
}
