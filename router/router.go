// api/router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/lotr/api/controller"
	"github.com/dev-mohitbeniwal/lotr/api/middleware"
	"github.com/dev-mohitbeniwal/lotr/api/ratelimit"
)

func SetupRouter(
	controllers *controller.Controllers,
	validator middleware.TokenValidator,
	limiter *ratelimit.Limiter,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(limiter))
	router.Use(middleware.Auth(validator))

	api := router.Group("/v1")

	controllers.Character.RegisterRoutes(api)
	controllers.Equipment.RegisterRoutes(api)
	controllers.Faction.RegisterRoutes(api)

	return router
}
