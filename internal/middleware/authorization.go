package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
)

// RequireRole returns a middleware that lets through callers holding any of roles.
// It must run after OperatorAuth or APIKeyAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) == 0 {
			c.Next()
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		errorResp := dto.NewError(dto.ErrCodeForbidden, i18n.T(c, i18n.ErrKeyForbidden)).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
	}
}
