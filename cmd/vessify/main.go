package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/allenkiakshay/vessify/internal/api"
	"github.com/allenkiakshay/vessify/internal/api/handlers"
	"github.com/allenkiakshay/vessify/internal/extraction"
	"github.com/allenkiakshay/vessify/internal/repository"
	"github.com/allenkiakshay/vessify/internal/service"
	"github.com/allenkiakshay/vessify/pkg/auth"
	"github.com/allenkiakshay/vessify/pkg/config"
	"github.com/allenkiakshay/vessify/pkg/logger"
	"github.com/allenkiakshay/vessify/pkg/middleware"
	"github.com/allenkiakshay/vessify/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting vessify service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	orgRepo := repository.NewOrganizationRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize extraction pipeline
	gemini := extraction.NewGeminiExtractor(&cfg.Gemini, appLogger)
	if !gemini.IsConfigured() {
		appLogger.Warn("Gemini API key not set, extraction will use the heuristic parser only")
	}
	extractor := extraction.NewExtractor(gemini, appLogger)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	orgService := service.NewOrganizationService(orgRepo, userRepo, appLogger)
	txService := service.NewTransactionService(txRepo, orgRepo, extractor, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	orgHandler := handlers.NewOrganizationHandler(orgService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)

	// Setup router
	rateLimitStore := middleware.NewMemoryCounterStore()
	app := api.SetupRouter(authHandler, orgHandler, txHandler, jwtManager, rateLimitStore, cfg, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
