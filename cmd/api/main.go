// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.PasswordResetTokenModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.EmailQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	healthController := controller.NewHealthController(dbHealthChecker)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	var authController *controller.AuthController
	var expenseController *controller.ExpenseController
	var categoryController *controller.CategoryController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		categoryRepo := persistence.NewCategoryRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

		// Adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
		resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
		emailService := email.NewService(emailQueueRepo)

		// Auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService, cfg.Email.AppBaseURL)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		currentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

		// Transaction use cases
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
		getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
		statsUseCase := transaction.NewGetTransactionStatsUseCase(transactionRepo)

		// Category use cases
		listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
		createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
		getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
		updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
		deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
		listCategoryStatsUseCase := category.NewListCategoriesWithStatsUseCase(categoryRepo, transactionRepo)

		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			currentUserUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		)
		expenseController = controller.NewExpenseController(
			listTransactionsUseCase,
			createTransactionUseCase,
			getTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
			statsUseCase,
		)
		categoryController = controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			getCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
			listCategoryStatsUseCase,
		)

		loginRateLimiter = middleware.NewRateLimiter(newRedisClient(&cfg.Redis))
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		startEmailWorker(workerCtx, cfg, emailQueueRepo)

		slog.Info("API systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		categoryController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.FrontendOrigin,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds the Redis client backing the login rate limiter.
// Returns nil when Redis is disabled or misconfigured, which selects the
// limiter's in-memory fallback.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, rate limiter using in-memory counters", "error", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, rate limiter using in-memory counters", "error", err)
		return nil
	}

	slog.Info("Redis connection established")
	return client
}

// startEmailWorker launches the background email queue worker when enabled
// and configured with a Resend API key.
func startEmailWorker(ctx context.Context, cfg *config.Config, emailQueueRepo adapter.EmailQueueRepository) {
	if !cfg.Email.WorkerEnabled {
		slog.Info("Email worker disabled")
		return
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will queue but not send")
		return
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		slog.Error("Failed to initialize email templates", "error", err)
		return
	}

	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	go worker.Start(ctx)
}
