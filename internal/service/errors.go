package service

import "errors"

// Error kinds returned by the pack service. Callers match them with errors.Is.
var (
	// ErrInvalidSize is returned for a pack size <= 0.
	ErrInvalidSize = errors.New("pack size must be a positive integer")
	// ErrPackSizeNotFound is returned when removing a size that is not registered.
	ErrPackSizeNotFound = errors.New("pack size not found")
	// ErrInvalidQuantity is returned for an order quantity <= 0.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrNoPackSizesConfigured is returned when computing against an empty size set.
	ErrNoPackSizesConfigured = errors.New("no pack sizes configured")
)
