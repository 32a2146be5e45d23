package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// PackRoutes handles pack-related route registration.
type PackRoutes struct {
	handler          *Handler
	packSizesHandler *PackSizesHandler
}

// NewPackRoutes creates a new PackRoutes instance.
func NewPackRoutes(packs service.PackService, logging service.LoggingService, audit *middleware.AsyncLogger) *PackRoutes {
	return &PackRoutes{
		handler:          NewHandler(packs),
		packSizesHandler: NewPackSizesHandler(packs, logging, audit),
	}
}

// RegisterPublicRoutes registers the read-only pack routes.
func (r *PackRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/calculate", r.handler.CalculatePacks)
	rg.POST("/calculate", r.handler.CalculatePacksBody)
	rg.GET("/packs", r.packSizesHandler.ListPackSizes)
}

// RegisterProtectedRoutes registers registry mutations and history behind guard.
func (r *PackRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	packs := rg.Group("/packs", guard...)
	packs.POST("", r.packSizesHandler.AddPackSize)
	packs.DELETE("", r.packSizesHandler.RemovePackSizeBody)
	packs.DELETE("/:size", r.packSizesHandler.RemovePackSize)
	packs.GET("/history", r.packSizesHandler.History)
}

// GetHandler returns the underlying pack handler.
func (r *PackRoutes) GetHandler() *Handler {
	return r.handler
}

var (
	_ PublicRouteGroup    = (*PackRoutes)(nil)
	_ ProtectedRouteGroup = (*PackRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
)
