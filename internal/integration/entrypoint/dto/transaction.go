package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for creating or replacing
// a transaction. Account/category fields apply to income and expense
// entries; from/to apply to transfers.
type TransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=income expense transfer"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Note          string          `json:"note,omitempty"`
	AccountID     *string         `json:"account_id,omitempty"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SubCategory   string          `json:"sub_category,omitempty"`
	FromAccountID *string         `json:"from_account_id,omitempty"`
	ToAccountID   *string         `json:"to_account_id,omitempty"`
}

// ImportRowRequest represents one row of a bulk import.
type ImportRowRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Note        string          `json:"note,omitempty"`
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	Category    string          `json:"category,omitempty"`
	SubCategory string          `json:"sub_category,omitempty"`
}

// ImportTransactionsRequest represents the request body for a bulk import.
type ImportTransactionsRequest struct {
	Rows []ImportRowRequest `json:"rows" binding:"required,min=1,dive"`
}

// ImportTransactionsResponse represents the response of a bulk import.
type ImportTransactionsResponse struct {
	Imported          int `json:"imported"`
	CategoriesCreated int `json:"categories_created"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
	AccountID     *string         `json:"account_id,omitempty"`
	CategoryID    *string         `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	SubCategory   string          `json:"sub_category,omitempty"`
	FromAccountID *string         `json:"from_account_id,omitempty"`
	ToAccountID   *string         `json:"to_account_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Date:        tx.Date,
		Note:        tx.Note,
		SubCategory: tx.SubCategory,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
	if tx.AccountID != nil {
		id := tx.AccountID.String()
		response.AccountID = &id
	}
	if tx.CategoryID != nil {
		id := tx.CategoryID.String()
		response.CategoryID = &id
	}
	if tx.FromAccountID != nil {
		id := tx.FromAccountID.String()
		response.FromAccountID = &id
	}
	if tx.ToAccountID != nil {
		id := tx.ToAccountID.String()
		response.ToAccountID = &id
	}
	return response
}

// ToTransactionListResponse converts transactions with categories to a
// TransactionListResponse.
func ToTransactionListResponse(items []*entity.TransactionWithCategory) TransactionListResponse {
	result := make([]TransactionResponse, len(items))
	for i, item := range items {
		result[i] = ToTransactionResponse(item.Transaction)
		if item.Category != nil {
			result[i].CategoryName = item.Category.Name
		}
	}
	return TransactionListResponse{Transactions: result}
}
