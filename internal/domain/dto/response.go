package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInvalidSize indicates a non-positive pack size.
	ErrCodeInvalidSize = "invalid_size"
	// ErrCodeInvalidQuantity indicates a non-positive order quantity.
	ErrCodeInvalidQuantity = "invalid_quantity"
	// ErrCodeNoPackSizes indicates a computation against an empty registry.
	ErrCodeNoPackSizes = "no_pack_sizes_configured"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_quantity"`
	Message   string            `json:"message,omitempty" example:"quantity must be a positive integer"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the generic error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// PackSizesResponse lists the registered pack sizes.
// @Description Registered pack sizes, ascending
type PackSizesResponse struct {
	Sizes   []int  `json:"sizes" example:"250,500,1000,2000,5000"`
	Version uint64 `json:"version" example:"1"`
} // @name PackSizesResponse

// NewPackSizesResponse converts a registry snapshot.
func NewPackSizesResponse(set model.PackSizeSet) PackSizesResponse {
	sizes := set.Sizes
	if sizes == nil {
		sizes = []int{}
	}
	return PackSizesResponse{Sizes: sizes, Version: set.Version}
}

// PackSizeMutationResponse reports the outcome of adding a pack size.
// @Description Result of a pack size mutation
type PackSizeMutationResponse struct {
	Size    int    `json:"size" example:"750"`
	Added   bool   `json:"added" example:"true"`
	Sizes   []int  `json:"sizes" example:"250,500,750,1000,2000,5000"`
	Version uint64 `json:"version" example:"2"`
} // @name PackSizeMutationResponse

// PackSizeHistoryResponse is a page of registry audit entries.
// @Description Audit trail of pack size changes, newest first
type PackSizeHistoryResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"12"`
} // @name PackSizeHistoryResponse
