package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// ClaimsKey is the gin context key holding the caller's *dto.Claims.
	ClaimsKey = "claims"
)

// APIKeyAuth returns a middleware that validates operator API keys.
// It checks the X-API-Key header first, then falls back to the api_key query parameter.
// A nil or empty verifier disables the check.
func APIKeyAuth(verifier *service.APIKeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil || verifier.Empty() {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		subject, ok := verifier.Verify(key)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		setClaims(c, &dto.Claims{Subject: subject, Roles: []string{dto.RoleOperator}})
		c.Next()
	}
}

// GetClaims returns the authenticated caller, or nil.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

// setClaims stores the caller in the gin context and attributes registry
// changes made by this request to it.
func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(ClaimsKey, claims)
	c.Request = c.Request.WithContext(service.WithOperator(c.Request.Context(), claims.Subject))
}

func abortUnauthorized(c *gin.Context, key string) {
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.T(c, key)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
