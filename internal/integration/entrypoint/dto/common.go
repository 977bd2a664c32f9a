// Package dto defines data transfer objects for API requests and responses.
package dto

// MessageResponse is the envelope for endpoints that only report an outcome.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse is the envelope for endpoints that return a payload.
type DataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// PaginationResponse describes the slice of a list returned to the caller.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ListResponse is the envelope for paginated list endpoints. Count is the
// number of items on this page, Total the number of items across all pages.
type ListResponse struct {
	Success    bool               `json:"success"`
	Count      int                `json:"count"`
	Total      int                `json:"total"`
	Pagination PaginationResponse `json:"pagination"`
	Data       interface{}        `json:"data"`
}

// NewErrorResponse builds a failed-request envelope.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}
