package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func assertTransactionErrorCode(t *testing.T, err error, want domainerror.TransactionErrorCode) {
	t.Helper()
	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected a transaction error, got %v", err)
	}
	if txErr.Code != want {
		t.Errorf("expected code %s, got %s", want, txErr.Code)
	}
}

func TestValidateShape(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()
	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	validEntry := func() *entity.Transaction {
		return &entity.Transaction{
			ID:        uuid.New(),
			Type:      entity.TransactionTypeExpense,
			Amount:    decimal.NewFromInt(10),
			Date:      date,
			AccountID: &accountID,
		}
	}
	validTransfer := func() *entity.Transaction {
		from := uuid.New()
		to := uuid.New()
		return &entity.Transaction{
			ID:            uuid.New(),
			Type:          entity.TransactionTypeTransfer,
			Amount:        decimal.NewFromInt(10),
			Date:          date,
			FromAccountID: &from,
			ToAccountID:   &to,
		}
	}

	t.Run("valid entry passes", func(t *testing.T) {
		if err := validateShape(validEntry()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("valid transfer passes", func(t *testing.T) {
		if err := validateShape(validTransfer()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		tx := validEntry()
		tx.Type = "loan"
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		tx := validEntry()
		tx.Amount = decimal.Zero
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeNonPositiveAmount)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		tx := validEntry()
		tx.Amount = decimal.NewFromInt(-5)
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeNonPositiveAmount)
	})

	t.Run("entry without an account is rejected", func(t *testing.T) {
		tx := validEntry()
		tx.AccountID = nil
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeMissingAccount)
	})

	t.Run("entry with transfer endpoints is rejected", func(t *testing.T) {
		tx := validEntry()
		other := uuid.New()
		tx.ToAccountID = &other
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeTransferFieldsOnEntry)
	})

	t.Run("transfer without both endpoints is rejected", func(t *testing.T) {
		tx := validTransfer()
		tx.ToAccountID = nil
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeMissingTransferAccounts)
	})

	t.Run("transfer with category fields is rejected", func(t *testing.T) {
		tx := validTransfer()
		tx.CategoryID = &categoryID
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeCategoryFieldsOnTransfer)
	})

	t.Run("transfer with a sub-category is rejected", func(t *testing.T) {
		tx := validTransfer()
		tx.SubCategory = "misc"
		assertTransactionErrorCode(t, validateShape(tx), domainerror.ErrCodeCategoryFieldsOnTransfer)
	})
}
