package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Note          string          `gorm:"type:text"`
	AccountID     *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	SubCategory   string          `gorm:"type:varchar(100)"`
	FromAccountID *uuid.UUID      `gorm:"type:uuid"`
	ToAccountID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		Note:          m.Note,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		SubCategory:   m.SubCategory,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded
// Category to a TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		Date:          transaction.Date,
		Note:          transaction.Note,
		AccountID:     transaction.AccountID,
		CategoryID:    transaction.CategoryID,
		SubCategory:   transaction.SubCategory,
		FromAccountID: transaction.FromAccountID,
		ToAccountID:   transaction.ToAccountID,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
