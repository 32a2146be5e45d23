package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// APIPrefix is the path prefix of every business route.
const APIPrefix = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	PackService    service.PackService
	LoggingService service.LoggingService
	TokenService   service.TokenService
	APIKeys        *service.APIKeyVerifier

	// AuditLogger persists request and audit entries; nil disables persistence.
	AuditLogger *middleware.AsyncLogger
	// RateLimiter and IdempotencyCache are created when nil. Owners of
	// instances passed in stop them on shutdown.
	RateLimiter      *middleware.RateLimiter
	IdempotencyCache *middleware.IdempotencyCache
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the pack planner.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group(APIPrefix)
	registerAPIRoutes(api, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.AuditLogger),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		if cfg.RateLimiter == nil {
			cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(cfg.RateLimiter.RateLimit())
	}

	router.Use(middleware.Timeout(middleware.TimeoutConfig{Timeout: cfg.RequestTimeout}))
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// registerAPIRoutes wires the pack and auth routes. Mutations get operator
// authentication when auth is enabled; idempotency replay runs after it.
func registerAPIRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.PackService == nil {
		return
	}

	var guard []gin.HandlerFunc
	if cfg.EnableAuth && cfg.TokenService != nil {
		NewAuthRoutes(cfg.TokenService, cfg.APIKeys, cfg.AuditLogger).RegisterPublicRoutes(api)

		guard = append(guard,
			middleware.OperatorAuth(cfg.TokenService, cfg.APIKeys),
			middleware.RequireRole(dto.RoleOperator),
		)
	}

	var idempotency []gin.HandlerFunc
	if cfg.EnableIdempotency {
		if cfg.IdempotencyCache == nil {
			cfg.IdempotencyCache = middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL)
		}
		idempotency = append(idempotency, middleware.Idempotency(middleware.IdempotencyConfig{
			Cache:   cfg.IdempotencyCache,
			Enabled: true,
		}))
	}

	packRoutes := NewPackRoutes(cfg.PackService, cfg.LoggingService, cfg.AuditLogger)
	packRoutes.RegisterPublicRoutes(api.Group("", idempotency...))
	packRoutes.RegisterProtectedRoutes(api, append(guard, idempotency...)...)
}
