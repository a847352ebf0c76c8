package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/audit"
	"github.com/dev-mohitbeniwal/lotr/api/auth"
	"github.com/dev-mohitbeniwal/lotr/api/cache"
	"github.com/dev-mohitbeniwal/lotr/api/config"
	"github.com/dev-mohitbeniwal/lotr/api/controller"
	"github.com/dev-mohitbeniwal/lotr/api/dao"
	"github.com/dev-mohitbeniwal/lotr/api/db"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/ratelimit"
	"github.com/dev-mohitbeniwal/lotr/api/router"
	"github.com/dev-mohitbeniwal/lotr/api/service"
	"github.com/dev-mohitbeniwal/lotr/api/util"
)

func main() {
	// Initialize configuration
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize MySQL
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize MySQL", zap.Error(err))
	}
	defer db.Close(gormDB)

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisClient.Close()
	redisCache := cache.NewRedisCache(redisClient)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService(redisCache, cfg.Cache.TTL)
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize auth
	tokenManager := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	permissionDAO := dao.NewPermissionDAO(gormDB)
	permissionChecker := auth.NewPermissionChecker(redisCache, permissionDAO, cfg.Cache.TTL)
	authorizer := auth.NewAuth(tokenManager, permissionChecker)

	// Initialize rate limiter
	limiter := ratelimit.NewLimiter(redisCache, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Initialize services
	services, err := service.InitializeServices(
		gormDB,
		authorizer,
		auditService,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
		cfg.Cache,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, authorizer, limiter)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
