// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a transaction category in the Pocket Ledger system.
// Sub-categories are free-text labels scoped to one category, unique
// case-insensitively within it.
type Category struct {
	ID            uuid.UUID
	Name          string
	Type          CategoryType
	SubCategories []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, subCategories []string) *Category {
	now := time.Now().UTC()

	if subCategories == nil {
		subCategories = []string{}
	}

	return &Category{
		ID:            uuid.New(),
		Name:          name,
		Type:          categoryType,
		SubCategories: subCategories,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidCategoryType reports whether the given type is income or expense.
func IsValidCategoryType(categoryType CategoryType) bool {
	return categoryType == CategoryTypeExpense || categoryType == CategoryTypeIncome
}

// HasSubCategory reports whether the category already contains the given
// sub-category label, compared case-insensitively.
func (c *Category) HasSubCategory(label string) bool {
	for _, sub := range c.SubCategories {
		if strings.EqualFold(sub, label) {
			return true
		}
	}
	return false
}

// AddSubCategory appends a sub-category label if it is not already present.
// It returns true when the label was added.
func (c *Category) AddSubCategory(label string) bool {
	if c.HasSubCategory(label) {
		return false
	}
	c.SubCategories = append(c.SubCategories, label)
	c.UpdatedAt = time.Now().UTC()
	return true
}
