package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	seed := func(repo *fakeCategoryRepository, name string) *entity.Category {
		category := entity.NewCategory(userID, name, entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		repo.categories[category.ID] = category
		return category
	}

	t.Run("should update provided fields and keep the rest", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seed(repo, "Food")
		uc := NewUpdateCategoryUseCase(repo)

		newBudget := decimal.NewFromInt(400)
		inactive := false

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Budget:     &newBudget,
			IsActive:   &inactive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Category.Budget.Equal(newBudget) {
			t.Errorf("expected budget 400, got %s", output.Category.Budget)
		}
		if output.Category.IsActive {
			t.Error("expected category to be inactive")
		}
		if output.Category.Name != "Food" {
			t.Errorf("expected name unchanged, got %s", output.Category.Name)
		}
	})

	t.Run("should rename when the new name is free", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seed(repo, "Food")
		uc := NewUpdateCategoryUseCase(repo)

		newName := "Dining"
		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       &newName,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Dining" {
			t.Errorf("expected renamed category, got %s", output.Category.Name)
		}
	})

	t.Run("should reject rename to an existing name", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seed(repo, "Food")
		seed(repo, "Travel")
		uc := NewUpdateCategoryUseCase(repo)

		taken := "Travel"
		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       &taken,
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("should allow updating with the current name", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seed(repo, "Food")
		uc := NewUpdateCategoryUseCase(repo)

		same := "Food"
		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       &same,
		})
		if err != nil {
			t.Errorf("expected same-name update to succeed, got %v", err)
		}
	})

	t.Run("should hide other users categories behind not found", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seed(repo, "Food")
		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			UserID:     uuid.New(),
			CategoryID: category.ID,
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("should list only the user's categories", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		mine := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		other := entity.NewCategory(uuid.New(), "Travel", entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		repo.categories[mine.ID] = mine
		repo.categories[other.ID] = other

		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 || output.Categories[0].Name != "Food" {
			t.Errorf("expected only the user's category, got %d", len(output.Categories))
		}
	})

	t.Run("should filter by type", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		expense := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		income := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		repo.categories[expense.ID] = expense
		repo.categories[income.ID] = income

		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{
			UserID: userID,
			Type:   entity.CategoryTypeIncome,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 || output.Categories[0].Name != "Salary" {
			t.Errorf("expected only income categories, got %d", len(output.Categories))
		}
	})

	t.Run("should reject invalid type", func(t *testing.T) {
		uc := NewListCategoriesUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID, Type: "transfer"})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Errorf("expected ErrInvalidCategoryType, got %v", err)
		}
	})
}
