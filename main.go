package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/cache"
	"github.com/printforge-edu/learning-service/internal/config"
	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/handlers"
	"github.com/printforge-edu/learning-service/internal/repositories/memory"
	"github.com/printforge-edu/learning-service/internal/seed"
	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the in-memory store and load the starter catalog
	store := memory.NewStore()
	if err := seed.Load(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Initialize the in-process event bus and its activity subscriber
	publisher := events.NewGoChannelPublisher(slogLogger)
	activityLogger := events.NewActivityLogger(publisher, slogLogger)
	if err := activityLogger.Run(context.Background()); err != nil {
		log.Fatalf("Failed to start activity logger: %v", err)
	}

	// Initialize Redis cache (if configured)
	var cacheHelper *cache.Helper
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			slogLogger.Warn("cache disabled, redis unreachable", "error", err)
		} else {
			cacheHelper = cache.NewHelper(redisClient, "learning")
		}
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	serviceManager := services.NewServiceManager(store, publisher, cacheHelper, slogLogger, validator)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if cacheHelper != nil {
		if err := cacheHelper.Close(); err != nil {
			log.Printf("Failed to close cache: %v", err)
		}
	}

	if err := store.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}

	logger.Info("Server exited")
}
