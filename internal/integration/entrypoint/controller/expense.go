// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/aggregate"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles transaction endpoints under /api/expenses.
type ExpenseController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	statsUseCase  *transaction.GetTransactionStatsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	statsUseCase *transaction.GetTransactionStatsUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// List handles GET /api/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:   userID,
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		Type:     entity.TransactionType(ctx.Query("type")),
		Preset:   aggregate.DatePreset(ctx.Query("dateRange")),
		SortBy:   aggregate.SortKey(ctx.Query("sortBy")),
	}
	input.Ascending = ctx.Query("sortOrder") == "asc"

	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Transactions, output.Pagination))
}

// Stats handles GET /api/expenses/stats requests.
func (c *ExpenseController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.GetTransactionStatsInput{
		UserID: userID,
		Preset: aggregate.DatePreset(ctx.Query("dateRange")),
	}

	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    dto.ToStatsResponse(output.Summary),
	})
}

// Create handles POST /api/expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		date = parsed
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Title:       req.Title,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{
		Success: true,
		Data:    dto.ToExpenseResponse(output.Transaction),
	})
}

// Get handles GET /api/expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    dto.ToExpenseResponse(output.Transaction),
	})
}

// Update handles PUT /api/expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body",
			string(domainerror.ErrCodeMissingTransactionFields),
		))
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Title:         req.Title,
		Category:      req.Category,
		Description:   req.Description,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    dto.ToExpenseResponse(output.Transaction),
	})
}

// Delete handles DELETE /api/expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: output.Message,
	})
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *ExpenseController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.NewErrorResponse(txnErr.Message, string(txnErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An internal error occurred", ""))
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeEmptyTitle,
		domainerror.ErrCodeTitleTooLong,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidSortKey,
		domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the missing-authentication error response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
		"User not authenticated",
		string(domainerror.ErrCodeMissingToken),
	))
}

// respondInvalidDate writes the malformed-date error response.
func respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		"Invalid date format. Use YYYY-MM-DD",
		string(domainerror.ErrCodeInvalidTransactionDate),
	))
}

// parseIDParam parses the :id path parameter, writing a 400 response when it
// is not a valid UUID.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ID format", ""))
		return uuid.Nil, false
	}
	return id, true
}

// parseDate accepts YYYY-MM-DD dates as well as full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseDateRange reads the optional startDate and endDate query parameters.
// A date-only endDate is extended to the end of that day so the bound stays
// inclusive. Malformed dates are rejected with a 400 response; the second
// return is false once a response has been written.
func parseDateRange(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var startDate, endDate *time.Time

	if raw := ctx.Query("startDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondInvalidDate(ctx)
			return nil, nil, false
		}
		startDate = &parsed
	}

	if raw := ctx.Query("endDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondInvalidDate(ctx)
			return nil, nil, false
		}
		if len(raw) == len("2006-01-02") {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		endDate = &parsed
	}

	return startDate, endDate, true
}
