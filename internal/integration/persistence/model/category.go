package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:varchar(100);not null;index:idx_categories_name_type"`
	Type          string         `gorm:"type:varchar(10);not null;index:idx_categories_name_type"`
	SubCategories pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	subCategories := make([]string, len(m.SubCategories))
	copy(subCategories, m.SubCategories)

	return &entity.Category{
		ID:            m.ID,
		Name:          m.Name,
		Type:          entity.CategoryType(m.Type),
		SubCategories: subCategories,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:            category.ID,
		Name:          category.Name,
		Type:          string(category.Type),
		SubCategories: pq.StringArray(category.SubCategories),
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
