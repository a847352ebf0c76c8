// api/middleware/middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/lotr/api/auth"
	"github.com/dev-mohitbeniwal/lotr/api/cache"
	"github.com/dev-mohitbeniwal/lotr/api/middleware"
	"github.com/dev-mohitbeniwal/lotr/api/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(t *testing.T, limit int) (*miniredis.Miniredis, *gin.Engine) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := ratelimit.NewLimiter(cache.NewRedisCache(client), limit, time.Minute)

	r := gin.New()
	r.Use(middleware.RateLimiter(limiter))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return mr, r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware(t *testing.T) {
	t.Run("MissingToken_Unauthorized", func(t *testing.T) {
		mr, r := newLimitedRouter(t, 5)

		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		// The rejection happened before any counter was touched.
		assert.Empty(t, mr.Keys())
	})

	t.Run("UnderLimit_PassesWithHeaders", func(t *testing.T) {
		_, r := newLimitedRouter(t, 5)

		w := doRequest(r, "some-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1m0s", w.Header().Get("X-RateLimit-Duration"))
	})

	t.Run("OverLimit_TooManyRequests", func(t *testing.T) {
		_, r := newLimitedRouter(t, 2)

		for i := 0; i < 2; i++ {
			w := doRequest(r, "busy-token")
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := doRequest(r, "busy-token")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())

		// A different token is unaffected.
		w = doRequest(r, "quiet-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CacheOutage_InternalServerError", func(t *testing.T) {
		mr, r := newLimitedRouter(t, 5)
		mr.Close()

		w := doRequest(r, "some-token")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	newAuthedRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.Auth(tm))
		r.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"userID": c.GetInt("userID"),
				"roleID": c.GetInt("roleID"),
			})
		})
		return r
	}

	t.Run("ValidToken_ClaimsOnContext", func(t *testing.T) {
		r := newAuthedRouter()
		token, err := tm.GenerateToken(42, 2)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userID":42,"roleID":2}`, w.Body.String())
	})

	t.Run("MissingToken_Unauthorized", func(t *testing.T) {
		r := newAuthedRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken_Unauthorized", func(t *testing.T) {
		r := newAuthedRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
