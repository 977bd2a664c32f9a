package aggregate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

var testUserID = uuid.New()

func makeTransaction(title string, amount float64, txnType entity.TransactionType, category string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(testUserID, title, decimal.NewFromFloat(amount), txnType, category, date, "")
}

func TestSummarize(t *testing.T) {
	t.Run("should aggregate totals, balance and average", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("Salary", 1000, entity.TransactionTypeIncome, "Salary", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Groceries", 200, entity.TransactionTypeExpense, "Food", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Dinner", 100, entity.TransactionTypeExpense, "Food", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		}

		summary := Summarize(transactions)

		if !summary.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total income 1000, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected total expense 300, got %s", summary.TotalExpense)
		}
		if !summary.Balance.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected balance 700, got %s", summary.Balance)
		}
		if summary.TotalTransactions != 3 {
			t.Errorf("expected 3 transactions, got %d", summary.TotalTransactions)
		}

		expectedAvg := decimal.NewFromInt(1300).Div(decimal.NewFromInt(3))
		if !summary.AvgTransaction.Equal(expectedAvg) {
			t.Errorf("expected average %s, got %s", expectedAvg, summary.AvgTransaction)
		}
	})

	t.Run("should return zero values for empty input", func(t *testing.T) {
		summary := Summarize(nil)

		if !summary.TotalIncome.IsZero() || !summary.TotalExpense.IsZero() || !summary.Balance.IsZero() {
			t.Error("expected all totals to be zero")
		}
		if summary.TotalTransactions != 0 {
			t.Errorf("expected 0 transactions, got %d", summary.TotalTransactions)
		}
		if !summary.AvgTransaction.IsZero() {
			t.Errorf("expected zero average, got %s", summary.AvgTransaction)
		}
		if len(summary.CategoryBreakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(summary.CategoryBreakdown))
		}
		if len(summary.MonthlyTrend) != 0 {
			t.Errorf("expected empty trend, got %d entries", len(summary.MonthlyTrend))
		}
	})

	t.Run("should sum category breakdown across types ordered by total descending", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("Salary", 1000, entity.TransactionTypeIncome, "Salary", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Groceries", 200, entity.TransactionTypeExpense, "Food", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Dinner", 100, entity.TransactionTypeExpense, "Food", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Bus", 50, entity.TransactionTypeExpense, "Transport", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)),
		}

		summary := Summarize(transactions)

		if len(summary.CategoryBreakdown) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(summary.CategoryBreakdown))
		}

		expected := []struct {
			category string
			total    int64
			count    int
			average  int64
		}{
			{"Salary", 1000, 1, 1000},
			{"Food", 300, 2, 150},
			{"Transport", 50, 1, 50},
		}
		for i, want := range expected {
			got := summary.CategoryBreakdown[i]
			if got.Category != want.category {
				t.Errorf("breakdown[%d]: expected category %s, got %s", i, want.category, got.Category)
			}
			if !got.Total.Equal(decimal.NewFromInt(want.total)) {
				t.Errorf("breakdown[%d]: expected total %d, got %s", i, want.total, got.Total)
			}
			if got.Count != want.count {
				t.Errorf("breakdown[%d]: expected count %d, got %d", i, want.count, got.Count)
			}
			if !got.Average.Equal(decimal.NewFromInt(want.average)) {
				t.Errorf("breakdown[%d]: expected average %d, got %s", i, want.average, got.Average)
			}
		}
	})

	t.Run("should keep first-encounter order for equal category totals", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("Cinema", 80, entity.TransactionTypeExpense, "Leisure", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Groceries", 80, entity.TransactionTypeExpense, "Food", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		}

		summary := Summarize(transactions)

		if summary.CategoryBreakdown[0].Category != "Leisure" || summary.CategoryBreakdown[1].Category != "Food" {
			t.Errorf("expected [Leisure Food], got [%s %s]",
				summary.CategoryBreakdown[0].Category, summary.CategoryBreakdown[1].Category)
		}
	})

	t.Run("should group monthly trend by year and month most recent first", func(t *testing.T) {
		transactions := []*entity.Transaction{
			makeTransaction("Salary", 1000, entity.TransactionTypeIncome, "Salary", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Groceries", 200, entity.TransactionTypeExpense, "Food", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Dinner", 100, entity.TransactionTypeExpense, "Food", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
			makeTransaction("Bonus", 300, entity.TransactionTypeIncome, "Salary", time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)),
		}

		summary := Summarize(transactions)

		if len(summary.MonthlyTrend) != 3 {
			t.Fatalf("expected 3 trend points, got %d", len(summary.MonthlyTrend))
		}

		expected := []struct {
			year, month      int
			income, expense  int64
		}{
			{2026, 2, 0, 100},
			{2026, 1, 1000, 200},
			{2025, 12, 300, 0},
		}
		for i, want := range expected {
			got := summary.MonthlyTrend[i]
			if got.Year != want.year || got.Month != want.month {
				t.Errorf("trend[%d]: expected %d-%02d, got %d-%02d", i, want.year, want.month, got.Year, got.Month)
			}
			if !got.Income.Equal(decimal.NewFromInt(want.income)) {
				t.Errorf("trend[%d]: expected income %d, got %s", i, want.income, got.Income)
			}
			if !got.Expense.Equal(decimal.NewFromInt(want.expense)) {
				t.Errorf("trend[%d]: expected expense %d, got %s", i, want.expense, got.Expense)
			}
		}
	})
}
