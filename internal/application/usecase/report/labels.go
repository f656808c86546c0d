// Package report contains the reporting and aggregation engine.
//
// Every derivation in this package is a pure function over the in-memory
// transaction log and category registry: no I/O, no hidden state. Use cases
// wrapping these functions live in the same package and only add repository
// loading and caching on top.
package report

import (
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// UncategorizedLabel is the single sentinel group label for transactions
// whose category is absent or no longer resolves. Both the aggregators and
// the drill-down resolver rely on this exact value.
const UncategorizedLabel = "uncategorized"

// GeneralLabel is the fallback sub-category bucket used by the comparison
// breakdown when a category filter is active and a transaction has no
// sub-category.
const GeneralLabel = "general"

// NameResolver translates a raw category name into its display form.
// Localization lives outside this core; callers inject whatever translation
// they need and the engine groups by the resolved result.
type NameResolver func(name string) string

// IdentityResolver returns names unchanged.
func IdentityResolver(name string) string { return name }

// CategoryIndex is a lookup table from category ID to category.
type CategoryIndex map[uuid.UUID]*entity.Category

// NewCategoryIndex builds a CategoryIndex from a category registry slice.
func NewCategoryIndex(categories []*entity.Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

// DisplayName resolves the display group label for a transaction. A missing
// or dangling category reference yields the resolved uncategorized label.
func DisplayName(tx *entity.Transaction, categories CategoryIndex, resolve NameResolver) string {
	if resolve == nil {
		resolve = IdentityResolver
	}
	if tx.CategoryID != nil {
		if c, ok := categories[*tx.CategoryID]; ok {
			return resolve(c.Name)
		}
	}
	return resolve(UncategorizedLabel)
}
