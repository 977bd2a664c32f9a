package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	seedCategory := func(repo *fakeCategoryRepository, name string) *entity.Category {
		category := entity.NewCategory(userID, name, entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		repo.categories[category.ID] = category
		return category
	}

	t.Run("should delete an unused category", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository()
		category := seedCategory(categoryRepo, "Food")
		uc := NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categoryRepo.categories) != 0 {
			t.Error("expected the category to be removed")
		}
	})

	t.Run("should refuse to delete a category referenced by transactions", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository()
		category := seedCategory(categoryRepo, "Food")

		txn := entity.NewTransaction(userID, "Groceries", decimal.NewFromInt(50),
			entity.TransactionTypeExpense, "Food", time.Now().UTC(), "")
		transactionRepo.transactions[txn.ID] = txn

		uc := NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
		})
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Errorf("expected ErrCategoryInUse, got %v", err)
		}
		if len(categoryRepo.categories) != 1 {
			t.Error("expected the category to remain")
		}
	})

	t.Run("should ignore another user's transactions with the same category name", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository()
		category := seedCategory(categoryRepo, "Food")

		txn := entity.NewTransaction(uuid.New(), "Groceries", decimal.NewFromInt(50),
			entity.TransactionTypeExpense, "Food", time.Now().UTC(), "")
		transactionRepo.transactions[txn.ID] = txn

		uc := NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("should hide other users categories behind not found", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		category := seedCategory(categoryRepo, "Food")
		uc := NewDeleteCategoryUseCase(categoryRepo, newFakeTransactionRepository())

		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			UserID:     uuid.New(),
			CategoryID: category.ID,
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestListCategoriesWithStatsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("should decorate categories with usage statistics", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository()

		food := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		categoryRepo.categories[food.ID] = food

		// Two expenses and one income under the same category name. The
		// count includes all three while the spent total only sums expenses.
		entries := []struct {
			amount  int64
			txnType entity.TransactionType
		}{
			{100, entity.TransactionTypeExpense},
			{50, entity.TransactionTypeExpense},
			{30, entity.TransactionTypeIncome},
		}
		for _, e := range entries {
			txn := entity.NewTransaction(userID, "Txn", decimal.NewFromInt(e.amount),
				e.txnType, "Food", time.Now().UTC(), "")
			transactionRepo.transactions[txn.ID] = txn
		}

		uc := NewListCategoriesWithStatsUseCase(categoryRepo, transactionRepo)

		output, err := uc.Execute(context.Background(), ListCategoriesWithStatsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(output.Categories))
		}
		stats := output.Categories[0]
		if stats.ExpensesCount != 3 {
			t.Errorf("expected count 3, got %d", stats.ExpensesCount)
		}
		if !stats.TotalSpent.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected total spent 150, got %s", stats.TotalSpent)
		}
	})

	t.Run("should return zero stats for unused categories", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository()

		unused := entity.NewCategory(userID, "Travel", entity.CategoryTypeExpense,
			decimal.Zero, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
		categoryRepo.categories[unused.ID] = unused

		uc := NewListCategoriesWithStatsUseCase(categoryRepo, transactionRepo)

		output, err := uc.Execute(context.Background(), ListCategoriesWithStatsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Categories[0].ExpensesCount != 0 || !output.Categories[0].TotalSpent.IsZero() {
			t.Error("expected zero stats for unused category")
		}
	})
}
