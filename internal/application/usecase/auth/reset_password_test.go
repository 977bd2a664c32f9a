package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestForgotPasswordUseCase_Execute(t *testing.T) {
	newUseCase := func() (*ForgotPasswordUseCase, *fakeUserRepository, *fakeResetTokenService, *fakeEmailService) {
		userRepo := newFakeUserRepository()
		resetTokens := newFakeResetTokenService()
		emailService := &fakeEmailService{}
		uc := NewForgotPasswordUseCase(userRepo, resetTokens, emailService, "http://localhost:5173")
		return uc, userRepo, resetTokens, emailService
	}

	t.Run("should queue reset email for existing user", func(t *testing.T) {
		uc, userRepo, resetTokens, emailService := newUseCase()
		user := entity.NewUser("Alice", "alice@example.com", "hashed:secret123")
		userRepo.users[user.ID] = user

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "alice@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Message == "" {
			t.Error("expected a non-empty message")
		}
		if len(resetTokens.tokens) != 1 {
			t.Errorf("expected 1 reset token, got %d", len(resetTokens.tokens))
		}
		if len(emailService.resetQueued) != 1 {
			t.Fatalf("expected 1 reset email queued, got %d", len(emailService.resetQueued))
		}
		if emailService.resetQueued[0].ResetURL == "" {
			t.Error("expected a reset URL in the queued email")
		}
	})

	t.Run("should return success for unknown email without queueing", func(t *testing.T) {
		uc, _, resetTokens, emailService := newUseCase()

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "nobody@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Message == "" {
			t.Error("expected a non-empty message")
		}
		if len(resetTokens.tokens) != 0 {
			t.Error("expected no reset token for unknown email")
		}
		if len(emailService.resetQueued) != 0 {
			t.Error("expected no email queued for unknown email")
		}
	})

	t.Run("should reject invalid email format", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "not-an-email"})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	newUseCase := func() (*ResetPasswordUseCase, *fakeUserRepository, *fakeResetTokenService) {
		userRepo := newFakeUserRepository()
		resetTokens := newFakeResetTokenService()
		uc := NewResetPasswordUseCase(userRepo, &fakePasswordService{}, resetTokens)
		return uc, userRepo, resetTokens
	}

	t.Run("should reset the password and invalidate the token", func(t *testing.T) {
		uc, userRepo, resetTokens := newUseCase()
		user := entity.NewUser("Alice", "alice@example.com", "hashed:old-password")
		userRepo.users[user.ID] = user

		token, err := resetTokens.GenerateResetToken(context.Background(), user.ID, user.Email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(context.Background(), ResetPasswordInput{
			Token:       token.Token,
			NewPassword: "new-password",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if userRepo.users[user.ID].PasswordHash != "hashed:new-password" {
			t.Errorf("expected password hash to be updated, got %s", userRepo.users[user.ID].PasswordHash)
		}
		if len(resetTokens.invalidated) != 1 {
			t.Errorf("expected the token to be invalidated, got %d invalidations", len(resetTokens.invalidated))
		}
	})

	t.Run("should reject unknown token", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       "unknown",
			NewPassword: "new-password",
		})
		if !errors.Is(err, domainerror.ErrInvalidResetToken) {
			t.Errorf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("should reject expired token", func(t *testing.T) {
		uc, userRepo, resetTokens := newUseCase()
		user := entity.NewUser("Alice", "alice@example.com", "hashed:old-password")
		userRepo.users[user.ID] = user

		token, _ := resetTokens.GenerateResetToken(context.Background(), user.ID, user.Email)
		resetTokens.tokens[token.Token].ExpiresAt = time.Now().UTC().Add(-time.Minute)

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       token.Token,
			NewPassword: "new-password",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeExpiredResetToken {
			t.Errorf("expected expired token error, got %v", err)
		}
	})

	t.Run("should reject weak new password", func(t *testing.T) {
		uc, userRepo, resetTokens := newUseCase()
		user := entity.NewUser("Alice", "alice@example.com", "hashed:old-password")
		userRepo.users[user.ID] = user

		token, _ := resetTokens.GenerateResetToken(context.Background(), user.ID, user.Email)

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       token.Token,
			NewPassword: "123",
		})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}
