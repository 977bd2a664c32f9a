package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("should create a transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Title:       "Groceries",
			Amount:      decimal.NewFromFloat(54.20),
			Type:        entity.TransactionTypeExpense,
			Category:    "Food",
			Date:        date,
			Description: "weekly shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ID == uuid.Nil {
			t.Error("expected a generated transaction ID")
		}
		if output.Transaction.Category != "Food" {
			t.Errorf("expected category Food, got %s", output.Transaction.Category)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(repo.transactions))
		}
	})

	t.Run("should default empty category", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID: userID,
			Title:  "Misc purchase",
			Amount: decimal.NewFromInt(10),
			Type:   entity.TransactionTypeExpense,
			Date:   date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Category != DefaultCategory {
			t.Errorf("expected default category %s, got %s", DefaultCategory, output.Transaction.Category)
		}
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		tests := []struct {
			name     string
			input    CreateTransactionInput
			wantCode domainerror.TransactionErrorCode
		}{
			{
				name:     "empty title",
				input:    CreateTransactionInput{UserID: userID, Title: "  ", Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense, Date: date},
				wantCode: domainerror.ErrCodeEmptyTitle,
			},
			{
				name:     "title too long",
				input:    CreateTransactionInput{UserID: userID, Title: strings.Repeat("x", MaxTitleLength+1), Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense, Date: date},
				wantCode: domainerror.ErrCodeTitleTooLong,
			},
			{
				name:     "description too long",
				input:    CreateTransactionInput{UserID: userID, Title: "ok", Description: strings.Repeat("x", MaxDescriptionLength+1), Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense, Date: date},
				wantCode: domainerror.ErrCodeDescriptionTooLong,
			},
			{
				name:     "invalid type",
				input:    CreateTransactionInput{UserID: userID, Title: "ok", Amount: decimal.NewFromInt(10), Type: "transfer", Date: date},
				wantCode: domainerror.ErrCodeInvalidTransactionType,
			},
			{
				name:     "negative amount",
				input:    CreateTransactionInput{UserID: userID, Title: "ok", Amount: decimal.NewFromInt(-5), Type: entity.TransactionTypeExpense, Date: date},
				wantCode: domainerror.ErrCodeNegativeAmount,
			},
			{
				name:     "missing date",
				input:    CreateTransactionInput{UserID: userID, Title: "ok", Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense},
				wantCode: domainerror.ErrCodeInvalidTransactionDate,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewCreateTransactionUseCase(newFakeTransactionRepository())

				_, err := uc.Execute(context.Background(), tt.input)

				var txnErr *domainerror.TransactionError
				if !errors.As(err, &txnErr) || txnErr.Code != tt.wantCode {
					t.Errorf("expected code %s, got %v", tt.wantCode, err)
				}
			})
		}
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository())

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID: userID,
			Title:  "Free sample",
			Amount: decimal.Zero,
			Type:   entity.TransactionTypeExpense,
			Date:   date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
