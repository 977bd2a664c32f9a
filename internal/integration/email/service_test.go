package email

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestServiceQueueWelcomeEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("should queue a pending welcome job", func(t *testing.T) {
		queue := newFakeEmailQueue()
		service := NewService(queue)

		err := service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			UserEmail: "ada@example.com",
			UserName:  "Ada",
			LoginURL:  "http://localhost:5173/login",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
		}
		for _, job := range queue.jobs {
			if job.TemplateType != entity.TemplateWelcome {
				t.Errorf("expected welcome template, got %q", job.TemplateType)
			}
			if job.RecipientEmail != "ada@example.com" {
				t.Errorf("unexpected recipient: %q", job.RecipientEmail)
			}
			if job.Status != entity.EmailStatusPending {
				t.Errorf("expected pending status, got %q", job.Status)
			}
			if job.TemplateData["login_url"] != "http://localhost:5173/login" {
				t.Errorf("login_url missing from template data: %v", job.TemplateData)
			}
		}
	})

	t.Run("should wrap queue failures with a queue error code", func(t *testing.T) {
		queue := newFakeEmailQueue()
		queue.failCreate = errors.New("connection refused")
		service := NewService(queue)

		err := service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			UserEmail: "ada@example.com",
			UserName:  "Ada",
		})

		var emailErr *domainerror.EmailError
		if !errors.As(err, &emailErr) {
			t.Fatalf("expected EmailError, got %v", err)
		}
		if emailErr.Code != domainerror.ErrCodeEmailQueueFailed {
			t.Errorf("expected code %q, got %q", domainerror.ErrCodeEmailQueueFailed, emailErr.Code)
		}
	})
}

func TestServiceQueuePasswordResetEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("should queue a reset job carrying the reset link", func(t *testing.T) {
		queue := newFakeEmailQueue()
		service := NewService(queue)

		err := service.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
			UserEmail: "ada@example.com",
			UserName:  "Ada",
			ResetURL:  "http://localhost:5173/reset-password?token=abc",
			ExpiresIn: "1 hour",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
		}
		for _, job := range queue.jobs {
			if job.TemplateType != entity.TemplatePasswordReset {
				t.Errorf("expected password reset template, got %q", job.TemplateType)
			}
			if job.TemplateData["reset_url"] != "http://localhost:5173/reset-password?token=abc" {
				t.Errorf("reset_url missing from template data: %v", job.TemplateData)
			}
			if job.TemplateData["expires_in"] != "1 hour" {
				t.Errorf("expires_in missing from template data: %v", job.TemplateData)
			}
		}
	})
}
