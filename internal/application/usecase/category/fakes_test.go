package category

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return category, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeCategoryRepository) FindByUserAndType(_ context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID && category.Type == categoryType {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeCategoryRepository) FindByNameAndUser(_ context.Context, name string, userID uuid.UUID) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name {
			return category, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errors.New("record not found")
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return errors.New("record not found")
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepository) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return transaction, nil
}

func (r *fakeTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.UserID == userID {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepository) CountByCategoryName(_ context.Context, userID uuid.UUID, categoryName string) (int64, error) {
	var count int64
	for _, transaction := range r.transactions {
		if transaction.UserID == userID && transaction.Category == categoryName {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepository) SumExpensesByCategoryName(_ context.Context, userID uuid.UUID, categoryName string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, transaction := range r.transactions {
		if transaction.UserID == userID && transaction.Category == categoryName &&
			transaction.Type == entity.TransactionTypeExpense {
			sum = sum.Add(transaction.Amount)
		}
	}
	return sum, nil
}
