package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	importUseCase *transaction.ImportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		importUseCase: importUseCase,
	}
}

// List handles GET /transactions requests. Filter criteria and an optional
// drill-down selector arrive as query parameters.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Criteria: report.FilterCriteria{
			SearchTerm: ctx.Query("search"),
			Range:      report.QuickRange(ctx.DefaultQuery("range", string(report.RangeAll))),
		},
		DrillDown: report.DrillDown{
			Kind:  report.DrillDownKind(ctx.Query("drill_kind")),
			Value: ctx.Query("drill_value"),
		},
	}

	if startStr := ctx.Query("start"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.Criteria.CustomStart = &start
	}
	if endStr := ctx.Query("end"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.Criteria.CustomEnd = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := toCreateInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	createInput, err := toCreateInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:                     transactionID,
		CreateTransactionInput: createInput,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: transactionID}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Import handles POST /transactions/import requests.
func (c *TransactionController) Import(ctx *gin.Context) {
	var req dto.ImportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	rows := make([]transaction.ImportRow, len(req.Rows))
	for i, row := range req.Rows {
		accountID, err := uuid.Parse(row.AccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
			})
			return
		}
		rows[i] = transaction.ImportRow{
			Type:         entity.TransactionType(row.Type),
			Amount:       row.Amount,
			Date:         row.Date,
			Note:         row.Note,
			AccountID:    accountID,
			CategoryName: row.Category,
			SubCategory:  row.SubCategory,
		}
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportTransactionsInput{Rows: rows})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ImportTransactionsResponse{
		Imported:          output.Imported,
		CategoriesCreated: output.CategoriesCreated,
	})
}

// toCreateInput converts a request body into a use case input, parsing the
// optional UUID references.
func toCreateInput(req dto.TransactionRequest) (transaction.CreateTransactionInput, error) {
	input := transaction.CreateTransactionInput{
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Date:        req.Date,
		Note:        req.Note,
		SubCategory: req.SubCategory,
	}

	var err error
	if input.AccountID, err = parseOptionalUUID(req.AccountID, "account_id"); err != nil {
		return input, err
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID, "category_id"); err != nil {
		return input, err
	}
	if input.FromAccountID, err = parseOptionalUUID(req.FromAccountID, "from_account_id"); err != nil {
		return input, err
	}
	if input.ToAccountID, err = parseOptionalUUID(req.ToAccountID, "to_account_id"); err != nil {
		return input, err
	}
	return input, nil
}

// parseOptionalUUID parses a nullable UUID string field.
func parseOptionalUUID(value *string, field string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, errors.New("invalid " + field + " format")
	}
	return &id, nil
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(c.statusCodeFor(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		// Import resolves categories, so category validation can surface here.
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps transaction error codes to HTTP status codes.
func (c *TransactionController) statusCodeFor(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeMissingAccount,
		domainerror.ErrCodeMissingTransferAccounts,
		domainerror.ErrCodeTransferFieldsOnEntry,
		domainerror.ErrCodeCategoryFieldsOnTransfer,
		domainerror.ErrCodeCategoryTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
