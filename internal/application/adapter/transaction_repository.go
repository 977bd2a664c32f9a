// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategoryName counts a user's transactions referencing the category name.
	CountByCategoryName(ctx context.Context, userID uuid.UUID, categoryName string) (int64, error)

	// SumExpensesByCategoryName sums a user's expense amounts for the category name.
	SumExpensesByCategoryName(ctx context.Context, userID uuid.UUID, categoryName string) (decimal.Decimal, error)
}
