// Package aggregate computes statistics over a user's transactions and
// applies filtering, sorting and pagination to transaction lists.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryTotal holds the aggregated amount for a single category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal
}

// MonthlyPoint holds aggregated income and expense totals for one month.
type MonthlyPoint struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summary is the result of aggregating a set of transactions.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	TotalTransactions int
	AvgTransaction    decimal.Decimal
	CategoryBreakdown []CategoryTotal
	MonthlyTrend      []MonthlyPoint
}

// Summarize aggregates transactions into overall totals, a per-category
// breakdown and a monthly trend.
//
// The category breakdown sums amounts across both income and expense
// transactions and is ordered by total descending; categories with equal
// totals keep their first-encounter order. The monthly trend is grouped by
// calendar year and month and ordered most recent first.
func Summarize(transactions []*entity.Transaction) Summary {
	summary := Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Balance:           decimal.Zero,
		AvgTransaction:    decimal.Zero,
		CategoryBreakdown: []CategoryTotal{},
		MonthlyTrend:      []MonthlyPoint{},
	}

	categoryIndex := make(map[string]int)
	monthIndex := make(map[[2]int]int)
	total := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
		total = total.Add(txn.Amount)

		if idx, ok := categoryIndex[txn.Category]; ok {
			summary.CategoryBreakdown[idx].Total = summary.CategoryBreakdown[idx].Total.Add(txn.Amount)
			summary.CategoryBreakdown[idx].Count++
		} else {
			categoryIndex[txn.Category] = len(summary.CategoryBreakdown)
			summary.CategoryBreakdown = append(summary.CategoryBreakdown, CategoryTotal{
				Category: txn.Category,
				Total:    txn.Amount,
				Count:    1,
			})
		}

		key := [2]int{txn.Date.Year(), int(txn.Date.Month())}
		if idx, ok := monthIndex[key]; ok {
			point := &summary.MonthlyTrend[idx]
			if txn.Type == entity.TransactionTypeIncome {
				point.Income = point.Income.Add(txn.Amount)
			} else {
				point.Expense = point.Expense.Add(txn.Amount)
			}
		} else {
			monthIndex[key] = len(summary.MonthlyTrend)
			point := MonthlyPoint{
				Year:    key[0],
				Month:   key[1],
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			if txn.Type == entity.TransactionTypeIncome {
				point.Income = txn.Amount
			} else {
				point.Expense = txn.Amount
			}
			summary.MonthlyTrend = append(summary.MonthlyTrend, point)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.TotalTransactions = len(transactions)
	if summary.TotalTransactions > 0 {
		summary.AvgTransaction = total.Div(decimal.NewFromInt(int64(summary.TotalTransactions)))
	}

	for i := range summary.CategoryBreakdown {
		entry := &summary.CategoryBreakdown[i]
		entry.Average = entry.Total.Div(decimal.NewFromInt(int64(entry.Count)))
	}

	sort.SliceStable(summary.CategoryBreakdown, func(i, j int) bool {
		return summary.CategoryBreakdown[i].Total.GreaterThan(summary.CategoryBreakdown[j].Total)
	})

	sort.SliceStable(summary.MonthlyTrend, func(i, j int) bool {
		if summary.MonthlyTrend[i].Year != summary.MonthlyTrend[j].Year {
			return summary.MonthlyTrend[i].Year > summary.MonthlyTrend[j].Year
		}
		return summary.MonthlyTrend[i].Month > summary.MonthlyTrend[j].Month
	})

	return summary
}
