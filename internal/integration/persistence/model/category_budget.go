package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryBudgetModel represents the category_budgets table in the database.
// CategoryID is the primary key: at most one budget exists per category.
type CategoryBudgetModel struct {
	CategoryID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CategoryBudgetModel.
func (CategoryBudgetModel) TableName() string {
	return "category_budgets"
}

// ToEntity converts a CategoryBudgetModel to a domain CategoryBudget entity.
func (m *CategoryBudgetModel) ToEntity() *entity.CategoryBudget {
	return &entity.CategoryBudget{
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CategoryBudgetFromEntity creates a CategoryBudgetModel from a domain entity.
func CategoryBudgetFromEntity(budget *entity.CategoryBudget) *CategoryBudgetModel {
	return &CategoryBudgetModel{
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
