package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// AuthHandler exchanges operator API keys for access tokens.
type AuthHandler struct {
	tokens service.TokenService
	audit  *middleware.AsyncLogger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(tokens service.TokenService, audit *middleware.AsyncLogger) *AuthHandler {
	return &AuthHandler{tokens: tokens, audit: audit}
}

// IssueToken handles POST /api/v1/auth/token requests.
//
// @Summary      Issue operator token
// @Description  Exchanges a valid X-API-Key for a short-lived Bearer token carrying the operator role
// @Tags         Auth
// @Produce      json
// @Param        X-API-Key header string true "Operator API key"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Access token"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	claims := middleware.GetClaims(c)
	if claims == nil {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired, nil)
		return
	}

	token, err := h.tokens.IssueToken(claims.Subject, claims.Roles)
	if err != nil {
		builder.ErrorFrom(err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionIssueToken, "Operator token issued",
		map[string]interface{}{"expires_in": token.ExpiresIn})
	builder.SuccessOK(token)
}

// AuthRoutes registers the token endpoint.
type AuthRoutes struct {
	handler *AuthHandler
	keys    *service.APIKeyVerifier
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(tokens service.TokenService, keys *service.APIKeyVerifier, audit *middleware.AsyncLogger) *AuthRoutes {
	return &AuthRoutes{
		handler: NewAuthHandler(tokens, audit),
		keys:    keys,
	}
}

// RegisterPublicRoutes registers POST /auth/token behind API key authentication.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/token", middleware.APIKeyAuth(r.keys), r.handler.IssueToken)
}

