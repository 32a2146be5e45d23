package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/service"
)

const bearerPrefix = "Bearer "

// OperatorAuth returns a middleware that authenticates operators by a Bearer
// token from tokens. When keys is not nil, a valid X-API-Key is accepted in
// place of a token.
func OperatorAuth(tokens service.TokenService, keys *service.APIKeyVerifier) gin.HandlerFunc {
	apiKeyAuth := APIKeyAuth(keys)
	acceptKeys := keys != nil && !keys.Empty()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if acceptKeys && c.GetHeader(APIKeyHeader) != "" {
				apiKeyAuth(c)
				return
			}
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
