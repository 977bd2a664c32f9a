package auth

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestRegisterUserUseCase_Execute(t *testing.T) {
	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepository, *fakeEmailService) {
		userRepo := newFakeUserRepository()
		emailService := &fakeEmailService{}
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{}, emailService, "http://localhost:5173")
		return uc, userRepo, emailService
	}

	t.Run("should register a user and return a token", func(t *testing.T) {
		uc, userRepo, emailService := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" {
			t.Error("expected a non-empty access token")
		}
		if output.User.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", output.User.Email)
		}
		if output.User.PasswordHash != "hashed:secret123" {
			t.Errorf("expected hashed password, got %s", output.User.PasswordHash)
		}
		if len(userRepo.users) != 1 {
			t.Errorf("expected 1 stored user, got %d", len(userRepo.users))
		}
		if len(emailService.welcomeQueued) != 1 {
			t.Fatalf("expected 1 welcome email queued, got %d", len(emailService.welcomeQueued))
		}
		if emailService.welcomeQueued[0].UserEmail != "alice@example.com" {
			t.Errorf("welcome email queued for wrong recipient: %s", emailService.welcomeQueued[0].UserEmail)
		}
	})

	t.Run("should normalize email to lowercase", func(t *testing.T) {
		uc, _, _ := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Name:     "Alice",
			Email:    "  Alice@Example.COM ",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "alice@example.com" {
			t.Errorf("expected normalized email, got %s", output.User.Email)
		}
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		uc, _, _ := newUseCase()

		input := RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error on first registration: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("should reject weak password", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "12345",
		})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("should reject invalid email format", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Name:     "Alice",
			Email:    "not-an-email",
			Password: "secret123",
		})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), RegisterUserInput{Email: "alice@example.com"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})
}
