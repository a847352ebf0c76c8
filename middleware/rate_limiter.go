// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/ratelimit"
	"github.com/dev-mohitbeniwal/lotr/api/util"
)

// RateLimiter throttles requests per bearer token. Requests without a
// token are rejected before they touch any counter.
func RateLimiter(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.BearerToken(c)
		if token == "" {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", lotr_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := limiter.Check(c, token)
		if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Rate limiting failed", err)
			c.Abort()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Duration", limiter.Window().String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.Int("limit", limiter.Limit()),
				zap.Duration("per", limiter.Window()))
			util.RespondWithError(c, http.StatusTooManyRequests, "Rate limit exceeded", lotr_errors.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
