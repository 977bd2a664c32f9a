package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Budget *float64 `json:"budget"`
	Color  string   `json:"color"`
	Icon   string   `json:"icon"`
}

// UpdateCategoryRequest represents the request body for category update.
// Nil fields keep the stored value.
type UpdateCategoryRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Budget   *float64 `json:"budget"`
	Color    *string  `json:"color"`
	Icon     *string  `json:"icon"`
	IsActive *bool    `json:"isActive"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Budget    float64   `json:"budget"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryWithStatsResponse decorates a category with usage statistics.
// ExpensesCount counts every transaction referencing the category while
// TotalSpent only sums expense-type amounts.
type CategoryWithStatsResponse struct {
	CategoryResponse
	ExpensesCount int     `json:"expensesCount"`
	TotalSpent    float64 `json:"totalSpent"`
}

// ToCategoryResponse converts a domain Category entity to a
// CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	budget, _ := category.Budget.Float64()
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		Budget:    budget,
		Color:     category.Color,
		Icon:      category.Icon,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryWithStatsResponse converts a decorated category to its DTO.
func ToCategoryWithStatsResponse(stats *entity.CategoryWithStats) CategoryWithStatsResponse {
	totalSpent, _ := stats.TotalSpent.Float64()
	return CategoryWithStatsResponse{
		CategoryResponse: ToCategoryResponse(stats.Category),
		ExpensesCount:    stats.ExpensesCount,
		TotalSpent:       totalSpent,
	}
}
