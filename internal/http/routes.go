package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that change state and need an operator
// when authentication is enabled.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes behind guard.
	RegisterProtectedRoutes(rg *gin.RouterGroup, guard ...gin.HandlerFunc)
}
