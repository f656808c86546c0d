package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Key  string `json:"key" binding:"required,oneof=cash bank wallet"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameAccountRequest represents the request body for renaming an account.
type RenameAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountWithBalanceResponse represents an account with its derived balance.
type AccountWithBalanceResponse struct {
	AccountResponse
	Balance decimal.Decimal `json:"balance"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountWithBalanceResponse `json:"accounts"`
}

// BalanceResponse represents the response for a single account balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Key:       string(account.Key),
		Name:      account.Name,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts with balances to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.AccountWithBalance) AccountListResponse {
	result := make([]AccountWithBalanceResponse, len(accounts))
	for i, awb := range accounts {
		result[i] = AccountWithBalanceResponse{
			AccountResponse: ToAccountResponse(awb.Account),
			Balance:         awb.Balance,
		}
	}
	return AccountListResponse{Accounts: result}
}
