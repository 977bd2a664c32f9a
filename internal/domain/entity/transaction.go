// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single income or expense record in the
// Expense Tracker system. Transactions reference their category by name,
// not by ID: renaming or deleting a category never cascades to history.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Amount      decimal.Decimal // Always non-negative; Type determines the sign in aggregates
	Type        TransactionType
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
