// Package i18n provides internationalization support for the pack planner.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyInvalidPackSize indicates a non-positive pack size.
	ErrKeyInvalidPackSize = "error.invalid_pack_size"
	// ErrKeyPackSizeNotFound indicates removal of an unregistered pack size.
	ErrKeyPackSizeNotFound = "error.pack_size_not_found"
	// ErrKeyInvalidQuantity indicates a non-positive order quantity.
	ErrKeyInvalidQuantity = "error.invalid_quantity"
	// ErrKeyNoPackSizes indicates a computation against an empty registry.
	ErrKeyNoPackSizes = "error.no_pack_sizes"
	// ErrKeyServiceUnavailable indicates the backing store is unreachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyHistoryUnavailable indicates audit storage is not configured.
	ErrKeyHistoryUnavailable = "error.history_unavailable"
)
