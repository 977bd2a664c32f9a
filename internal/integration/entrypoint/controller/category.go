// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints under /api/categories.
type CategoryController struct {
	listUseCase      *category.ListCategoriesUseCase
	createUseCase    *category.CreateCategoryUseCase
	getUseCase       *category.GetCategoryUseCase
	updateUseCase    *category.UpdateCategoryUseCase
	deleteUseCase    *category.DeleteCategoryUseCase
	listStatsUseCase *category.ListCategoriesWithStatsUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	getUseCase *category.GetCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	listStatsUseCase *category.ListCategoriesWithStatsUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		listStatsUseCase: listStatsUseCase,
	}
}

// List handles GET /api/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID: userID,
		Type:   entity.CategoryType(ctx.Query("type")),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	items := make([]dto.CategoryResponse, 0, len(output.Categories))
	for _, cat := range output.Categories {
		items = append(items, dto.ToCategoryResponse(cat))
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    items,
	})
}

// Stats handles GET /api/categories/stats requests.
func (c *CategoryController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listStatsUseCase.Execute(ctx.Request.Context(), category.ListCategoriesWithStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	items := make([]dto.CategoryWithStatsResponse, 0, len(output.Categories))
	for _, stats := range output.Categories {
		items = append(items, dto.ToCategoryWithStatsResponse(stats))
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    items,
	})
}

// Create handles POST /api/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body",
			string(domainerror.ErrCodeMissingCategoryFields),
		))
		return
	}

	input := category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Type:   entity.CategoryType(req.Type),
		Budget: decimal.Zero,
		Color:  req.Color,
		Icon:   req.Icon,
	}
	if req.Budget != nil {
		input.Budget = decimal.NewFromFloat(*req.Budget)
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{
		Success: true,
		Data:    dto.ToCategoryResponse(output.Category),
	})
}

// Get handles GET /api/categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    dto.ToCategoryResponse(output.Category),
	})
}

// Update handles PUT /api/categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body",
			string(domainerror.ErrCodeMissingCategoryFields),
		))
		return
	}

	input := category.UpdateCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
		Color:      req.Color,
		Icon:       req.Icon,
		IsActive:   req.IsActive,
	}

	if req.Type != nil {
		catType := entity.CategoryType(*req.Type)
		input.Type = &catType
	}
	if req.Budget != nil {
		budget := decimal.NewFromFloat(*req.Budget)
		input.Budget = &budget
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    dto.ToCategoryResponse(output.Category),
	})
}

// Delete handles DELETE /api/categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: output.Message,
	})
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
		ctx.JSON(statusCode, dto.NewErrorResponse(catErr.Message, string(catErr.Code)))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An internal error occurred", ""))
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCategory:
		return http.StatusForbidden
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeNegativeBudget,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
