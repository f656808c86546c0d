package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/account"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase    *account.ListAccountsUseCase
	createUseCase  *account.CreateAccountUseCase
	renameUseCase  *account.RenameAccountUseCase
	deleteUseCase  *account.DeleteAccountUseCase
	balanceUseCase *account.GetBalanceUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
	renameUseCase *account.RenameAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	balanceUseCase *account.GetBalanceUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		renameUseCase:  renameUseCase,
		deleteUseCase:  deleteUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		Key:  entity.AccountKey(req.Key),
		Name: req.Name,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Rename handles PATCH /accounts/:id requests.
func (c *AccountController) Rename(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.RenameAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), account.RenameAccountInput{
		ID:   accountID,
		Name: req.Name,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{ID: accountID}); err != nil {
		c.handleAccountError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetBalance handles GET /accounts/:id/balance requests.
func (c *AccountController) GetBalance(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), account.GetBalanceInput{AccountID: accountID})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BalanceResponse{Balance: output.Balance})
}

// handleAccountError maps account errors to HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(c.statusCodeFor(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps account error codes to HTTP status codes.
func (c *AccountController) statusCodeFor(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountNameRequired, domainerror.ErrCodeInvalidAccountKey:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
