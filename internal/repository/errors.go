package repository

import "errors"

// ErrPackSizeNotFound is returned when a delete matches no stored pack size.
var ErrPackSizeNotFound = errors.New("pack size not found in store")
