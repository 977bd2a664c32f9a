// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware guards routes behind a valid Bearer access token and
// exposes the token's claims to downstream handlers via the Gin context.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate returns the Gin handler enforcing JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg, errCode := bearerToken(c.GetHeader("Authorization"))
		if errMsg != "" {
			abortUnauthorized(c, errMsg, errCode)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. On
// failure it returns the message and code to respond with.
func bearerToken(header string) (token, errMsg string, errCode domainerror.AuthErrorCode) {
	switch {
	case header == "":
		return "", "Authorization header is required", domainerror.ErrCodeMissingToken
	case !strings.HasPrefix(header, "Bearer "):
		return "", "Invalid authorization header format", domainerror.ErrCodeInvalidToken
	}

	token = strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", "Token is required", domainerror.ErrCodeMissingToken
	}
	return token, "", ""
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(message, string(code)))
	c.Abort()
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
