// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListCategoriesWithStatsInput represents the input for listing categories with stats.
type ListCategoriesWithStatsInput struct {
	UserID uuid.UUID
}

// ListCategoriesWithStatsOutput represents the output of listing categories with stats.
type ListCategoriesWithStatsOutput struct {
	Categories []*entity.CategoryWithStats
}

// ListCategoriesWithStatsUseCase decorates each category with usage
// statistics. The count includes every transaction referencing the
// category name while the spent total only sums expense-type amounts.
type ListCategoriesWithStatsUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesWithStatsUseCase creates a new ListCategoriesWithStatsUseCase instance.
func NewListCategoriesWithStatsUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListCategoriesWithStatsUseCase {
	return &ListCategoriesWithStatsUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's categories decorated with usage statistics.
func (uc *ListCategoriesWithStatsUseCase) Execute(ctx context.Context, input ListCategoriesWithStatsInput) (*ListCategoriesWithStatsOutput, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*entity.CategoryWithStats, 0, len(categories))
	for _, category := range categories {
		count, err := uc.transactionRepo.CountByCategoryName(ctx, input.UserID, category.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to count category usage: %w", err)
		}

		spent, err := uc.transactionRepo.SumExpensesByCategoryName(ctx, input.UserID, category.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to sum category expenses: %w", err)
		}

		result = append(result, &entity.CategoryWithStats{
			Category:      category,
			ExpensesCount: int(count),
			TotalSpent:    spent,
		})
	}

	return &ListCategoriesWithStatsOutput{Categories: result}, nil
}
