package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestLoginUserUseCase_Execute(t *testing.T) {
	newUseCase := func() (*LoginUserUseCase, *fakeUserRepository) {
		userRepo := newFakeUserRepository()
		uc := NewLoginUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{})
		return uc, userRepo
	}

	seedUser := func(repo *fakeUserRepository) *entity.User {
		user := entity.NewUser("Alice", "alice@example.com", "hashed:secret123")
		repo.users[user.ID] = user
		return user
	}

	t.Run("should login with valid credentials", func(t *testing.T) {
		uc, userRepo := newUseCase()
		user := seedUser(userRepo)

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "alice@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.ID != user.ID {
			t.Error("expected the seeded user to be returned")
		}
		if output.AccessToken == "" {
			t.Error("expected a non-empty access token")
		}
	})

	t.Run("should accept mixed-case email", func(t *testing.T) {
		uc, userRepo := newUseCase()
		seedUser(userRepo)

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ALICE@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		uc, userRepo := newUseCase()
		seedUser(userRepo)

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("should reject unknown email with the same error", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("should reject missing credentials", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "alice@example.com"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})
}
