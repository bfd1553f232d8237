package main

import (
	"context"
	"log"

	"github.com/allenkiakshay/vessify/internal/dto"
	"github.com/allenkiakshay/vessify/internal/extraction"
	"github.com/allenkiakshay/vessify/internal/repository"
	"github.com/allenkiakshay/vessify/internal/service"
	"github.com/allenkiakshay/vessify/pkg/auth"
	"github.com/allenkiakshay/vessify/pkg/config"
	"github.com/allenkiakshay/vessify/pkg/logger"
	"github.com/allenkiakshay/vessify/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds a demo user and organization, then runs a few sample statement
// fragments through the extraction pipeline.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	orgRepo := repository.NewOrganizationRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	orgService := service.NewOrganizationService(orgRepo, userRepo, appLogger)

	gemini := extraction.NewGeminiExtractor(&cfg.Gemini, appLogger)
	extractor := extraction.NewExtractor(gemini, appLogger)
	txService := service.NewTransactionService(txRepo, orgRepo, extractor, appLogger)

	appLogger.Info("Starting database seeding")

	account, err := authService.Register(ctx, &dto.RegisterRequest{
		Username: "demo",
		Email:    "demo@vessify.dev",
		Password: "demo-password",
	})
	if err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}
	userID := uuid.MustParse(account.User.ID)

	org, err := orgService.Create(ctx, userID, "Demo Organization")
	if err != nil {
		appLogger.Fatal("Failed to create demo organization", zap.Error(err))
	}
	orgID := uuid.MustParse(org.ID)

	samples := []string{
		"Starbucks Coffee 12/15/2024 ₹420.00",
		"Amazon Purchase Rs. 1,500.50 dated 15-12-2024",
		"UPI transfer to landlord\nAmount: 18,000.00\nDate: 01-12-2024",
		"Salary credited INR 85,000 on 2024-12-01",
		"Uber ride 11 Dec 2024 $14.20",
	}
	for _, text := range samples {
		tx, err := txService.Extract(ctx, userID, orgID, text)
		if err != nil {
			appLogger.Fatal("Failed to seed transaction", zap.Error(err), zap.String("text", text))
		}
		appLogger.Info("Seeded transaction",
			zap.String("id", tx.ID),
			zap.Float64("confidence", tx.Confidence),
		)
	}

	appLogger.Info("Database seeding completed",
		zap.String("user_id", account.User.ID),
		zap.String("organization_id", org.ID),
	)
}
