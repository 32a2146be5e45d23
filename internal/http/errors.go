package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/service"
)

// errorMapping is the HTTP rendering of a service error.
type errorMapping struct {
	status int
	code   string
	key    string
}

var errorMappings = []struct {
	target  error
	mapping errorMapping
}{
	{service.ErrInvalidSize, errorMapping{http.StatusBadRequest, dto.ErrCodeInvalidSize, i18n.ErrKeyInvalidPackSize}},
	{service.ErrInvalidQuantity, errorMapping{http.StatusBadRequest, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity}},
	{service.ErrPackSizeNotFound, errorMapping{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyPackSizeNotFound}},
	{service.ErrNoPackSizesConfigured, errorMapping{http.StatusUnprocessableEntity, dto.ErrCodeNoPackSizes, i18n.ErrKeyNoPackSizes}},
	{circuitbreaker.ErrCircuitOpen, errorMapping{http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable}},
	{context.DeadlineExceeded, errorMapping{http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout}},
}

var internalErrorMapping = errorMapping{http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError}

// mapError returns the HTTP rendering of err.
func mapError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mapping
		}
	}
	return internalErrorMapping
}
