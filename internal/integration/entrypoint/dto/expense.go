package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/aggregate"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for transaction creation.
type CreateExpenseRequest struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// UpdateExpenseRequest represents the request body for transaction update.
// Nil fields keep the stored value.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title"`
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

// ExpenseResponse represents a transaction in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryBreakdownResponse represents one category entry in the stats
// response. Total sums income and expense amounts together.
type CategoryBreakdownResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
}

// MonthlyTrendResponse represents one month entry in the stats response.
type MonthlyTrendResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// StatsResponse represents the aggregated statistics payload.
type StatsResponse struct {
	TotalIncome       float64                     `json:"totalIncome"`
	TotalExpense      float64                     `json:"totalExpense"`
	Balance           float64                     `json:"balance"`
	TotalTransactions int                         `json:"totalTransactions"`
	AvgTransaction    float64                     `json:"avgTransaction"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	MonthlyTrend      []MonthlyTrendResponse      `json:"monthlyTrend"`
}

// ToExpenseResponse converts a domain Transaction entity to an
// ExpenseResponse DTO.
func ToExpenseResponse(txn *entity.Transaction) ExpenseResponse {
	amount, _ := txn.Amount.Float64()
	return ExpenseResponse{
		ID:          txn.ID.String(),
		Title:       txn.Title,
		Amount:      amount,
		Type:        string(txn.Type),
		Category:    txn.Category,
		Date:        txn.Date,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToExpenseListResponse converts a page of transactions plus pagination
// metadata into the list envelope.
func ToExpenseListResponse(transactions []*entity.Transaction, pagination aggregate.Pagination) ListResponse {
	items := make([]ExpenseResponse, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, ToExpenseResponse(txn))
	}

	return ListResponse{
		Success: true,
		Count:   len(items),
		Total:   pagination.Total,
		Pagination: PaginationResponse{
			Page:  pagination.Page,
			Limit: pagination.Limit,
			Pages: pagination.Pages,
		},
		Data: items,
	}
}

// ToStatsResponse converts an aggregate summary to the stats payload.
func ToStatsResponse(summary aggregate.Summary) StatsResponse {
	totalIncome, _ := summary.TotalIncome.Float64()
	totalExpense, _ := summary.TotalExpense.Float64()
	balance, _ := summary.Balance.Float64()
	avg, _ := summary.AvgTransaction.Round(2).Float64()

	breakdown := make([]CategoryBreakdownResponse, 0, len(summary.CategoryBreakdown))
	for _, entry := range summary.CategoryBreakdown {
		total, _ := entry.Total.Float64()
		average, _ := entry.Average.Round(2).Float64()
		breakdown = append(breakdown, CategoryBreakdownResponse{
			Category: entry.Category,
			Total:    total,
			Count:    entry.Count,
			Average:  average,
		})
	}

	trend := make([]MonthlyTrendResponse, 0, len(summary.MonthlyTrend))
	for _, point := range summary.MonthlyTrend {
		income, _ := point.Income.Float64()
		expense, _ := point.Expense.Float64()
		trend = append(trend, MonthlyTrendResponse{
			Year:    point.Year,
			Month:   point.Month,
			Income:  income,
			Expense: expense,
		})
	}

	return StatsResponse{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           balance,
		TotalTransactions: summary.TotalTransactions,
		AvgTransaction:    avg,
		CategoryBreakdown: breakdown,
		MonthlyTrend:      trend,
	}
}
