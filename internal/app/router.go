// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/http"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler    *http.HealthHandler
	Config           http.RouterConfig
	RateLimiter      *middleware.RateLimiter
	IdempotencyCache *middleware.IdempotencyCache
}

// InitializeRouter builds the health handler and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	healthHandler := http.NewHealthHandler()

	if db != nil {
		loggingService = db.LoggingService
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker(PackSizesBreakerName, db.PackSizesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(LogsBreakerName, db.LogsCircuitBreaker)
	}

	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	components := &RouterComponents{
		HealthHandler:    healthHandler,
		IdempotencyCache: middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL),
	}
	if cfg.Server.RateLimit > 0 {
		components.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	components.Config = http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		PackService:       services.Packs,
		LoggingService:    loggingService,
		TokenService:      services.Tokens,
		APIKeys:           services.APIKeys,
		AuditLogger:       middleware.GetAsyncLogger(),
		RateLimiter:       components.RateLimiter,
		IdempotencyCache:  components.IdempotencyCache,
	}
	return components
}

// Stop ends the router's background goroutines and drains the audit logger.
func (r *RouterComponents) Stop() {
	if r == nil {
		return
	}
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
	if r.IdempotencyCache != nil {
		r.IdempotencyCache.Stop()
	}
	middleware.StopAsyncLogger()
}
