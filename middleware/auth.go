// api/middleware/auth.go

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/auth"
	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/util"
)

// TokenValidator verifies bearer tokens presented on incoming requests.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, auth.Status)
}

// Auth rejects requests whose bearer token is missing, expired or
// malformed, and stashes the verified claims on the request context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.BearerToken(c)
		if token == "" {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", lotr_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, status := validator.ValidateToken(token)
		if status != auth.StatusValid {
			logger.Warn("Token rejected",
				zap.String("status", status.String()),
				zap.String("path", c.Request.URL.Path))
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", lotr_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set("token", token)
		c.Set("userID", claims.UserID)
		c.Set("roleID", claims.RoleID)

		c.Next()
	}
}
