package category

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// memoryCategoryRepo is an in-process CategoryRepository for tests.
type memoryCategoryRepo struct {
	categories []*entity.Category
}

func (r *memoryCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *memoryCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return nil
		}
	}
	return nil
}

func (r *memoryCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memoryCategoryRepo) FindByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (*entity.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) && c.Type == categoryType {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memoryCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func TestResolveOrCreateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing category", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewResolveOrCreateUseCase(repo, nil)

		output, err := uc.Execute(ctx, ResolveOrCreateInput{Name: "Food", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Created {
			t.Error("expected the category to be created")
		}
		if output.Category.Name != "Food" {
			t.Errorf("expected name Food, got %q", output.Category.Name)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 persisted category, got %d", len(repo.categories))
		}
	})

	t.Run("resolves an existing category case-insensitively", func(t *testing.T) {
		existing := entity.NewCategory("Food", entity.CategoryTypeExpense, nil)
		repo := &memoryCategoryRepo{categories: []*entity.Category{existing}}
		uc := NewResolveOrCreateUseCase(repo, nil)

		output, err := uc.Execute(ctx, ResolveOrCreateInput{Name: "food", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created {
			t.Error("expected resolution, not creation")
		}
		if output.Category.ID != existing.ID {
			t.Error("expected the existing category")
		}
	})

	t.Run("same name with a different type is a distinct category", func(t *testing.T) {
		existing := entity.NewCategory("Side Gig", entity.CategoryTypeExpense, nil)
		repo := &memoryCategoryRepo{categories: []*entity.Category{existing}}
		uc := NewResolveOrCreateUseCase(repo, nil)

		output, err := uc.Execute(ctx, ResolveOrCreateInput{Name: "Side Gig", Type: entity.CategoryTypeIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Created {
			t.Error("expected a new category for the other type")
		}
		if len(repo.categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(repo.categories))
		}
	})

	t.Run("appends a new sub-category once", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewResolveOrCreateUseCase(repo, nil)
		input := ResolveOrCreateInput{Name: "Food", Type: entity.CategoryTypeExpense, SubCategory: "Snacks"}

		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.SubCategoryAdded {
			t.Error("expected the sub-category appended")
		}

		input.SubCategory = "snacks"
		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Created || second.SubCategoryAdded {
			t.Error("expected the repeated call to change nothing")
		}
		if len(second.Category.SubCategories) != 1 {
			t.Errorf("expected 1 sub-category, got %d", len(second.Category.SubCategories))
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewResolveOrCreateUseCase(repo, nil)
		input := ResolveOrCreateInput{Name: "Food", Type: entity.CategoryTypeExpense}

		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Created {
			t.Error("expected no second creation")
		}
		if first.Category.ID != second.Category.ID {
			t.Error("expected both calls to resolve the same category")
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 category, got %d", len(repo.categories))
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewResolveOrCreateUseCase(&memoryCategoryRepo{}, nil)
		if _, err := uc.Execute(ctx, ResolveOrCreateInput{Name: "   ", Type: entity.CategoryTypeExpense}); err == nil {
			t.Error("expected an error for a blank name")
		}
	})
}
