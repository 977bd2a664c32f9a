// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3b82f6"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category. Names are unique per user
// (case-sensitive) and act as the linkage key for transactions.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Budget    decimal.Decimal // Non-negative, zero means no budget set
	Color     string
	Icon      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Defaulting of color and icon
// is applied in the application layer before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, budget decimal.Decimal, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Budget:    budget,
		Color:     color,
		Icon:      icon,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithStats represents a category decorated with transaction
// statistics. ExpensesCount counts every transaction referencing the
// category regardless of type, while TotalSpent only sums expense-type
// amounts.
type CategoryWithStats struct {
	Category      *Category
	ExpensesCount int
	TotalSpent    decimal.Decimal
}
