// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/aggregate"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Search    string
	Category  string
	Type      entity.TransactionType
	Preset    aggregate.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    aggregate.SortKey
	Ascending bool
	Page      int
	Limit     int
	Now       time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Pagination   aggregate.Pagination
}

// ListTransactionsUseCase handles transaction listing with filtering,
// sorting and pagination.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the user's transactions after applying filters, ordering
// and pagination.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Preset.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"date preset must be one of 'all', 'today', 'week', 'month' or 'year'",
			domainerror.ErrInvalidDateRange,
		)
	}
	if !input.SortBy.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidSortKey,
			"sort key must be one of 'date', 'amount' or 'title'",
			domainerror.ErrInvalidSortKey,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := aggregate.Apply(transactions, aggregate.Query{
		Search:    input.Search,
		Category:  input.Category,
		Type:      input.Type,
		Preset:    input.Preset,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		SortBy:    input.SortBy,
		Ascending: input.Ascending,
		Now:       input.Now,
	})

	page, pagination := aggregate.Paginate(filtered, input.Page, input.Limit)

	return &ListTransactionsOutput{
		Transactions: page,
		Pagination:   pagination,
	}, nil
}
