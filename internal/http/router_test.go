package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := newTestRouter(t, newPackService(t, defaultSizes...))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "liveness", path: "/healthz", expectedStatus: http.StatusOK, expectedBody: `"status":"ok"`},
		{name: "readiness", path: "/readyz", expectedStatus: http.StatusOK, expectedBody: `"service":"ok"`},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK, expectedBody: "go_goroutines"},
		{name: "unknown route", path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	router := newTestRouter(t, newPackService(t, defaultSizes...), func(cfg *RouterConfig) {
		cfg.SwaggerUser = "docs"
		cfg.SwaggerPass = "secret"
	})

	w := do(router, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	router := newTestRouter(t, newPackService(t, defaultSizes...), func(cfg *RouterConfig) {
		cfg.RateLimit = 2
		cfg.RateLimiter = limiter
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(router, http.MethodGet, "/api/v1/packs", "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRouter_IdempotentAdd(t *testing.T) {
	packs := newPackService(t, defaultSizes...)
	router := newTestRouter(t, packs)

	first := do(router, http.MethodPost, "/api/v1/packs", `{"size": 750}`, middleware.IdempotencyKeyHeader, "add-750")
	require.Equal(t, http.StatusCreated, first.Code)

	second := do(router, http.MethodPost, "/api/v1/packs", `{"size": 750}`, middleware.IdempotencyKeyHeader, "add-750")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, uint64(2), packs.ListPackSizes(context.Background()).Version)
}

func TestNewRouter_WithoutPackService(t *testing.T) {
	router := newTestRouter(t, nil)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/packs", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "").Code)
}

func TestHealthHandler_Readiness(t *testing.T) {
	openBreaker := circuitbreaker.New(circuitbreaker.Config{Name: "pack_sizes", FailureThreshold: 1, Timeout: time.Minute})
	_ = openBreaker.Execute(context.Background(), func() error { return errors.New("down") })
	require.True(t, openBreaker.IsOpen())

	tests := []struct {
		name           string
		setup          func(h *HealthHandler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no dependencies",
			setup:          func(h *HealthHandler) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "healthy checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker("logs", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"logs_circuit":"closed"`,
		},
		{
			name: "failing checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return errors.New("no reachable servers") }))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "no reachable servers",
		},
		{
			name: "open breaker",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("pack_sizes", openBreaker)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"status":"degraded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)
			router := NewRouter(h, RouterConfig{})

			w := do(router, http.MethodGet, "/readyz", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "invalid size", err: service.ErrInvalidSize, expectedStatus: http.StatusBadRequest, expectedCode: dto.ErrCodeInvalidSize},
		{name: "invalid quantity", err: service.ErrInvalidQuantity, expectedStatus: http.StatusBadRequest, expectedCode: dto.ErrCodeInvalidQuantity},
		{name: "wrapped not found", err: errors.Join(errors.New("remove"), service.ErrPackSizeNotFound), expectedStatus: http.StatusNotFound, expectedCode: dto.ErrCodeNotFound},
		{name: "no sizes", err: service.ErrNoPackSizesConfigured, expectedStatus: http.StatusUnprocessableEntity, expectedCode: dto.ErrCodeNoPackSizes},
		{name: "circuit open", err: circuitbreaker.ErrCircuitOpen, expectedStatus: http.StatusServiceUnavailable, expectedCode: dto.ErrCodeUnavailable},
		{name: "request deadline", err: fmt.Errorf("compute: %w", context.DeadlineExceeded), expectedStatus: http.StatusGatewayTimeout, expectedCode: dto.ErrCodeTimeout},
		{name: "unknown", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mapError(tt.err)
			assert.Equal(t, tt.expectedStatus, m.status)
			assert.Equal(t, tt.expectedCode, m.code)
		})
	}
}
