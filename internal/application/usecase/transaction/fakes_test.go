package transaction

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

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
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return errors.New("record not found")
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.transactions[id]; !ok {
		return errors.New("record not found")
	}
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
