package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface. The
// global budget lives in the settings key/value table; category budgets
// have their own table keyed by category.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// UpsertCategoryBudget creates or replaces the budget for a category.
func (r *budgetRepository) UpsertCategoryBudget(ctx context.Context, budget *entity.CategoryBudget) error {
	budgetModel := model.CategoryBudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteCategoryBudget removes the budget for a category, if any.
func (r *budgetRepository) DeleteCategoryBudget(ctx context.Context, categoryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.CategoryBudgetModel{}, "category_id = ?", categoryID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindCategoryBudget retrieves the budget for a category.
func (r *budgetRepository) FindCategoryBudget(ctx context.Context, categoryID uuid.UUID) (*entity.CategoryBudget, error) {
	var budgetModel model.CategoryBudgetModel
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindAllCategoryBudgets retrieves every category budget.
func (r *budgetRepository) FindAllCategoryBudgets(ctx context.Context) ([]*entity.CategoryBudget, error) {
	var budgetModels []model.CategoryBudgetModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.CategoryBudget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// GetGlobalBudget retrieves the process-wide monthly budget. An absent
// settings row reads as zero, meaning unset.
func (r *budgetRepository) GetGlobalBudget(ctx context.Context) (decimal.Decimal, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).
		Where("key = ?", entity.GlobalBudgetKey).
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, result.Error
	}

	amount, err := decimal.NewFromString(settingModel.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed global budget setting: %w", err)
	}
	return amount, nil
}

// SetGlobalBudget stores the process-wide monthly budget.
func (r *budgetRepository) SetGlobalBudget(ctx context.Context, amount decimal.Decimal) error {
	settingModel := &model.SettingModel{
		Key:       entity.GlobalBudgetKey,
		Value:     amount.String(),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
