// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/aggregate"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetTransactionStatsInput represents the input for computing statistics.
type GetTransactionStatsInput struct {
	UserID    uuid.UUID
	Preset    aggregate.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
	Now       time.Time
}

// GetTransactionStatsOutput represents the output of computing statistics.
type GetTransactionStatsOutput struct {
	Summary aggregate.Summary
}

// GetTransactionStatsUseCase computes aggregated statistics over a user's
// transactions, optionally restricted to a date preset window.
type GetTransactionStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionStatsUseCase creates a new GetTransactionStatsUseCase instance.
func NewGetTransactionStatsUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionStatsUseCase {
	return &GetTransactionStatsUseCase{transactionRepo: transactionRepo}
}

// Execute computes the statistics.
func (uc *GetTransactionStatsUseCase) Execute(ctx context.Context, input GetTransactionStatsInput) (*GetTransactionStatsOutput, error) {
	if !input.Preset.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"date preset must be one of 'all', 'today', 'week', 'month' or 'year'",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	windowed := aggregate.Apply(transactions, aggregate.Query{
		Preset:    input.Preset,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Now:       input.Now,
	})

	return &GetTransactionStatsOutput{Summary: aggregate.Summarize(windowed)}, nil
}
