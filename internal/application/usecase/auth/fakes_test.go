package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errors.New("password too short")
	}
	return nil
}

type fakeTokenService struct{}

func (s *fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (string, error) {
	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type fakeResetTokenService struct {
	tokens      map[string]*adapter.PasswordResetToken
	invalidated []string
}

func newFakeResetTokenService() *fakeResetTokenService {
	return &fakeResetTokenService{tokens: make(map[string]*adapter.PasswordResetToken)}
}

func (s *fakeResetTokenService) GenerateResetToken(_ context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	token := &adapter.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	s.tokens[token.Token] = token
	return token, nil
}

func (s *fakeResetTokenService) ValidateResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	resetToken, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("token not found")
	}
	return resetToken, nil
}

func (s *fakeResetTokenService) InvalidateResetToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	s.invalidated = append(s.invalidated, token)
	return nil
}

type fakeEmailService struct {
	welcomeQueued []adapter.QueueWelcomeInput
	resetQueued   []adapter.QueuePasswordResetInput
}

func (s *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	s.welcomeQueued = append(s.welcomeQueued, input)
	return nil
}

func (s *fakeEmailService) QueuePasswordResetEmail(_ context.Context, input adapter.QueuePasswordResetInput) error {
	s.resetQueued = append(s.resetQueued, input)
	return nil
}
