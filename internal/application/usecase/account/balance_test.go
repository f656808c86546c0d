package account

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func TestComputeBalance(t *testing.T) {
	cash := uuid.New()
	bank := uuid.New()
	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	entry := func(txType entity.TransactionType, amount int64, accountID uuid.UUID) *entity.Transaction {
		return &entity.Transaction{
			ID:        uuid.New(),
			Type:      txType,
			Amount:    decimal.NewFromInt(amount),
			Date:      date,
			AccountID: &accountID,
		}
	}
	transfer := func(amount int64, from, to uuid.UUID) *entity.Transaction {
		return &entity.Transaction{
			ID:            uuid.New(),
			Type:          entity.TransactionTypeTransfer,
			Amount:        decimal.NewFromInt(amount),
			Date:          date,
			FromAccountID: &from,
			ToAccountID:   &to,
		}
	}

	t.Run("income adds and expense subtracts", func(t *testing.T) {
		transactions := []*entity.Transaction{
			entry(entity.TransactionTypeIncome, 1000, cash),
			entry(entity.TransactionTypeExpense, 300, cash),
		}

		balance := ComputeBalance(transactions, cash)
		if !balance.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected 700, got %s", balance)
		}
	})

	t.Run("transfer moves value between endpoints", func(t *testing.T) {
		transactions := []*entity.Transaction{
			entry(entity.TransactionTypeIncome, 1000, cash),
			transfer(400, cash, bank),
		}

		if got := ComputeBalance(transactions, cash); !got.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected source at 600, got %s", got)
		}
		if got := ComputeBalance(transactions, bank); !got.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected destination at 400, got %s", got)
		}
	})

	t.Run("transfers conserve total value across accounts", func(t *testing.T) {
		transactions := []*entity.Transaction{
			entry(entity.TransactionTypeIncome, 1000, cash),
			transfer(400, cash, bank),
			transfer(150, bank, cash),
		}

		total := ComputeBalance(transactions, cash).Add(ComputeBalance(transactions, bank))
		if !total.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected system total 1000, got %s", total)
		}
	})

	t.Run("unreferenced account yields zero", func(t *testing.T) {
		transactions := []*entity.Transaction{
			entry(entity.TransactionTypeIncome, 1000, cash),
		}

		if got := ComputeBalance(transactions, bank); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("empty log yields zero", func(t *testing.T) {
		if got := ComputeBalance(nil, cash); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}
