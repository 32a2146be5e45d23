// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Range checks on sizes and
// quantities belong to the service layer so every transport reports the same
// error kinds.
package dto

// CalculatePacksRequest is the input of the calculate endpoints.
//
// GET binds Quantity from the query string, POST from the JSON body.
// PackSizes is optional; when empty the registered pack sizes are used.
//
// @Description Request to compute the pack plan for an order
// @Example {"quantity": 251}
// @Example {"quantity": 500000, "pack_sizes": [23, 31, 53]}
type CalculatePacksRequest struct {
	// Quantity is the number of items ordered. Must be greater than 0.
	Quantity *int `form:"quantity" json:"quantity" binding:"required" example:"251" minimum:"1"`
	// PackSizes overrides the registered pack sizes for this request only.
	PackSizes []int `form:"-" json:"pack_sizes,omitempty" example:"23,31,53"`
} // @name CalculatePacksRequest

// PackSizeRequest identifies a single pack size to add or remove.
//
// @Description Pack size to add to or remove from the registry
// @Example {"size": 750}
type PackSizeRequest struct {
	// Size is the pack size in items. Must be greater than 0.
	Size *int `json:"size" binding:"required" example:"750" minimum:"1"`
} // @name PackSizeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidPathSize is returned when the :size path parameter is not an integer.
var ErrInvalidPathSize = &ValidationError{
	Field:   "size",
	Message: "must be an integer",
}
